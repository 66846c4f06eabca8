// Package errors provides classified error primitives for the patterns CLI.
//
// The builders themselves never fail; classified errors are produced by the
// outer surfaces (configuration loading, post definitions, file output and
// rendering) so the CLI can pick an exit code and a log level from a single
// value.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryValidation, "unknown block kind").
//		WithContext("index", 3).
//		WithContext("kind", "quote").
//		Build()
package errors
