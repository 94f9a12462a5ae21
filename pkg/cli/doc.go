// Package cli implements the command-line interface for the gpustat tool.
//
// # Overview
//
// gpustat reads telemetry from AMD GPUs exposed through the Linux DRM
// subsystem and prints it in machine-friendly form. The default invocation
// takes a single reading from every device and exits; the snapshot
// subcommand wraps the same readings in a versioned document.
//
// # Commands
//
// Default (no subcommand) - one telemetry line per device:
//
//	gpustat
//
// Prints one JSON object per AMD GPU on stdout, with a fixed set of keys
// (temperature, load, core clock, power usage, VRAM used/total). Devices
// that fail to read produce a single error line on stderr instead; the
// process still exits 0. When no AMD GPUs are present a short notice is
// printed on stdout.
//
// snapshot - capture a telemetry document:
//
//	gpustat snapshot [--output FILE] [--format json|yaml|table] [--metrics-file FILE]
//
// Collects the same readings and emits them as a single document with run
// metadata (run ID, timestamp, tool version). Failed devices are listed in
// the document. Output defaults to stdout in JSON format.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--sysfs-root   DRM class directory to enumerate (default: /sys/class/drm)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success, including runs where individual devices failed to read
//	1  Device enumeration failed or invalid arguments
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/snapshotter - concurrent per-device collection
//   - pkg/collector/gpu - sysfs discovery and sensor reads
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gpustat/gpustat/pkg/cli.version=1.0.0'"
package cli
