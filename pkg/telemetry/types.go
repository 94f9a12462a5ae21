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

package telemetry

import (
	"encoding/json"
	"fmt"
	"time"
)

// APIVersion identifies the snapshot document schema.
const APIVersion = "gpustat/v1"

// KindSnapshot is the document kind emitted by the snapshot output mode.
const KindSnapshot = "TelemetrySnapshot"

// Record is the per-device telemetry result. Every field is already
// formatted for display; field declaration order fixes the JSON key order.
// A Record is constructed atomically: it is either fully populated or not
// produced at all.
type Record struct {
	Temperature string `json:"GPU Temperature" yaml:"temperature"`
	Load        string `json:"GPU Load" yaml:"load"`
	CoreClock   string `json:"GPU Core Clock" yaml:"coreClock"`
	PowerUsage  string `json:"GPU Power Usage" yaml:"powerUsage"`
	VRAMUsed    string `json:"GPU VRAM Usage" yaml:"vramUsed"`
	VRAMTotal   string `json:"GPU VRAM Total" yaml:"vramTotal"`
}

// MarshalLine serializes the record as a single-line JSON object with the
// six fixed keys in declaration order.
func (r *Record) MarshalLine() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to serialize record: %w", err)
	}
	return string(b), nil
}

// String implements fmt.Stringer using the single-line JSON form.
func (r *Record) String() string {
	s, err := r.MarshalLine()
	if err != nil {
		return fmt.Sprintf("<unserializable record: %v>", err)
	}
	return s
}

// Result pairs one discovered device with the outcome of its pipeline.
// Exactly one of Record and Err is set.
type Result struct {
	// Device is the filesystem path of the GPU device node.
	Device string
	// Record holds the assembled telemetry when collection succeeded.
	Record *Record
	// Err holds the failure that aborted this device's pipeline.
	Err error
}

// Snapshot wraps the results of one collection run with metadata.
// It is the document form used by the snapshot output mode.
type Snapshot struct {
	APIVersion string         `json:"apiVersion" yaml:"apiVersion"`
	Kind       string         `json:"kind" yaml:"kind"`
	ID         string         `json:"id" yaml:"id"`
	Taken      time.Time      `json:"taken" yaml:"taken"`
	Version    string         `json:"version,omitempty" yaml:"version,omitempty"`
	Records    []DeviceRecord `json:"records" yaml:"records"`
	Errors     []DeviceError  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// DeviceRecord attributes a Record to the device it was read from.
type DeviceRecord struct {
	Device string `json:"device" yaml:"device"`
	Record Record `json:"telemetry" yaml:"telemetry"`
}

// DeviceError attributes a collection failure to the device it occurred on.
type DeviceError struct {
	Device string `json:"device" yaml:"device"`
	Error  string `json:"error" yaml:"error"`
}

// NewSnapshot creates a Snapshot envelope from ordered per-device results.
// Result order is preserved within the records and errors lists.
func NewSnapshot(id, version string, results []Result) *Snapshot {
	snap := &Snapshot{
		APIVersion: APIVersion,
		Kind:       KindSnapshot,
		ID:         id,
		Taken:      time.Now().UTC(),
		Version:    version,
		Records:    make([]DeviceRecord, 0, len(results)),
	}

	for _, res := range results {
		if res.Err != nil {
			snap.Errors = append(snap.Errors, DeviceError{
				Device: res.Device,
				Error:  res.Err.Error(),
			})
			continue
		}
		snap.Records = append(snap.Records, DeviceRecord{
			Device: res.Device,
			Record: *res.Record,
		})
	}

	return snap
}
