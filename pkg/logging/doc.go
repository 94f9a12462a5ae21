// Package logging provides structured logging utilities for gpustat.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// for consistent logging: structured JSON records on stderr, module and
// version context on every record, environment-based level configuration,
// and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gpustat", version)
//
//	    // Use slog as normal
//	    slog.Info("collection complete", "devices", n)
//	    slog.Debug("detailed state", "record", rec)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("gpustat", "v1.0.0", "debug")
//	logger.Debug("probing hwmon", "device", devicePath)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug gpustat
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never interleave
// with the telemetry records the tool prints on stdout:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "msg": "discovered devices",
//	    "module": "gpustat",
//	    "version": "v1.0.0",
//	    "count": 2
//	}
package logging
