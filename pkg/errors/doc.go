// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to read sensor file",
//	    readErr,
//	    map[string]interface{}{
//	        "path": sensorPath,
//	        "device": devicePath,
//	    },
//	)
package errors
