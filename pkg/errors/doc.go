// Package errors provides the coded error type used throughout bkgen, plus
// the Violation/Recover pair that turns broken internal invariants into a
// fatal abort of the document being generated.
package errors
