// Copyright (c) 2025, the gpustat authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package file provides utilities for reading kernel pseudo-files.
//
// Sysfs and procfs expose sensor readings as small text files holding a
// single value. This package wraps the read-trim-parse sequence with the
// error handling conventions used throughout the collector framework.
//
// # Usage
//
// Read a single value as a string:
//
//	parser := file.NewParser()
//	vendor, err := parser.GetValue("/sys/class/drm/card0/device/vendor")
//	if err != nil {
//	    // Handle error
//	}
//
// Read, parse, and transform a numeric value:
//
//	degrees, err := file.ReadNumber(parser, hwmonDir, "temp1_input",
//	    func(milli int64) float64 { return float64(milli) / 1000 })
//
// # Error Handling
//
// Read failures carry errors.ErrCodeIO; content that does not parse as the
// requested numeric representation carries errors.ErrCodeParse. Both wrap
// the underlying cause for errors.Is/As inspection.
//
// # Thread Safety
//
// A Parser is immutable after construction and safe for concurrent use
// from multiple per-device goroutines.
package file
