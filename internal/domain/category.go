package domain

import "fmt"

// ServiceCategory classifies a provider's line of business.
// The set is closed: membership is decided by an exhaustive switch so that
// adding a category is a compile-time-visible change everywhere it is matched.
type ServiceCategory string

// Valid provider categories.
const (
	CategoryGarage   ServiceCategory = "GARAGE"
	CategoryCarrier  ServiceCategory = "CARRIER"
	CategoryDetailer ServiceCategory = "DETAILER"
)

// IsValid checks if the category is a member of the closed set.
// Unknown values are never coerced.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryGarage, CategoryCarrier, CategoryDetailer:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the category.
func (c ServiceCategory) String() string {
	return string(c)
}

// ParseServiceCategory converts an arbitrary input value into a
// ServiceCategory, failing with a ValidationError on the "category" field
// when the value is outside the closed set.
func ParseServiceCategory(value string) (ServiceCategory, error) {
	c := ServiceCategory(value)
	if !c.IsValid() {
		return "", NewValidationError(
			"category",
			fmt.Sprintf("%q is not a valid service category", value),
			ErrValidation,
		)
	}
	return c, nil
}
