// Package errors provides structured error types for the memplan library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending buffer index and the bound it was
// checked against, plus an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLookup, errors.KindOutOfRange).
//		Index(7).
//		Count(3).
//		Detail("buffer index %d is outside range 0 to %d", 7, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseLookup, 7, 3)
//	err := errors.Unsupported(errors.PhasePlan, "AddBuffer")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
