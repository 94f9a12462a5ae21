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

// Package telemetry defines the data types produced by GPU collection.
//
// A Record is the per-device bundle of display-formatted metric strings.
// It marshals to a single-line JSON object with six fixed keys in fixed
// order, matching the line-per-device output contract:
//
//	{"GPU Temperature":"63.4 °C","GPU Load":"27.0%","GPU Core Clock":"2.50 GHz",...}
//
// A Result pairs one discovered device with either its Record or the error
// that aborted its pipeline; exactly one of the two is set. A Snapshot is
// the envelope used by the document output mode, wrapping all Results with
// run metadata.
package telemetry
