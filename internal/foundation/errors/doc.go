// Package errors provides the classified error primitives used across papersite.
//
// A ClassifiedError carries a category, a severity and structured context next to the
// usual message and cause. Categories drive the process exit code through
// CLIErrorAdapter; severities decide whether a failure stops the run or is absorbed
// by the batch that produced it.
//
// Example usage:
//
//	err := errors.FileSystemError("cannot read source document").
//		WithCause(ioErr).
//		WithContext("path", path).
//		Build()
package errors
