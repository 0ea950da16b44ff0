// Package internalcheck hosts repository-wide policy tests. The checks load
// the module's packages with go/packages and fail when source drifts from
// the layering rules, most importantly that cgo never leaks out of
// internal/bindings.
package internalcheck
