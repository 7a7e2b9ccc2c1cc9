// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeComputationFailed,
//	    "checksum tool exited abnormally",
//	    cause,
//	    map[string]interface{}{
//	        "tool": toolPath,
//	        "exitCode": exitCode,
//	    },
//	)
package errors
