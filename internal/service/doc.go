// Package service provides the application layer for provider profiles
// and their service catalogs: it fronts every store mutation with
// validation and composes multi-entity reads into response shapes.
package service
