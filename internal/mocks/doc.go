// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized in-memory implementations are reused across packages. Each
// mock supports per-method Fn overrides for customized behavior and falls
// back to a map-backed default implementation that honors the store error
// taxonomy.
package mocks
