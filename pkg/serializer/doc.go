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

// Package serializer provides encoding of telemetry snapshot documents in
// multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable configuration format
//
// Table:
//   - Flattened key/value view for terminal inspection
//
// # Usage
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.(serializer.Closer).Close()
//	if err := writer.Serialize(ctx, snapshot); err != nil {
//	    return err
//	}
//
// When the output path is empty or cannot be created, writers fall back to
// stdout. The line-per-device output mode of the main pipeline does not go
// through this package; it serializes records directly (telemetry.Record's
// MarshalLine) to keep the fixed key order and single-line shape.
package serializer
