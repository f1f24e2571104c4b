// Package errors provides structured error types for the test generator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending value, a path to the failing element
// (mnemonic, macro, parameter) and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTemplate, errors.KindTemplateArgument).
//		Path("TEST_RR_OP", "src2").
//		Detail("parameter not supplied").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Configuration(errors.PhaseCodec, "lane width 12 does not divide 32", 12)
//	err := errors.TemplateArgument("TEST_RR_OP", "src2")
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match any error of their Kind regardless of Phase.
package errors
