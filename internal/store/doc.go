// Package store defines the persistence contracts for provider profiles
// and their catalog services, along with the error taxonomy shared by all
// store implementations.
package store
