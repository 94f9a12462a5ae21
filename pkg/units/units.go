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

// Package units formats raw sensor values into human-readable strings.
//
// Each Unit selects the scaling and suffix rule for one class of metric:
// fixed-point with a unit suffix for temperature and power, percentage for
// utilization ratios, and magnitude-scaled output for byte and hertz values
// (1024-based for memory, 1000-based for frequency).
package units

import "fmt"

// Unit identifies the formatting rule applied to a raw metric value.
type Unit string

const (
	// Temperature formats degrees Celsius with one decimal place.
	Temperature Unit = "temperature"
	// Memory formats byte counts with binary magnitude suffixes (KB..TB).
	Memory Unit = "memory"
	// Utilization formats a 0-1 ratio as a percentage with one decimal place.
	Utilization Unit = "utilization"
	// Power formats watts with one decimal place.
	Power Unit = "power"
	// Frequency formats hertz with decimal magnitude suffixes (kHz..GHz).
	Frequency Unit = "frequency"
)

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

// scale pairs a magnitude suffix with the smallest value it applies to.
// Tables are ordered largest first so an exact threshold match selects
// that suffix, never a smaller one.
type scale struct {
	suffix    string
	threshold float64
}

var byteScales = []scale{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
}

var hertzScales = []scale{
	{"GHz", 1e9},
	{"MHz", 1e6},
	{"kHz", 1e3},
}

// Format renders value according to the rule selected by unit.
// Unknown units fall back to plain fixed-point output.
func Format(unit Unit, value float64) string {
	switch unit {
	case Temperature:
		return fmt.Sprintf("%.1f °C", value)
	case Utilization:
		return fmt.Sprintf("%.1f%%", value*100)
	case Power:
		return fmt.Sprintf("%.1f W", value)
	case Memory:
		return formatScaled(value, byteScales)
	case Frequency:
		return formatScaled(value, hertzScales)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

// formatScaled divides value by the first threshold it meets or exceeds and
// appends that threshold's suffix. Values below every threshold are emitted
// as-is with no decimals and no suffix.
func formatScaled(value float64, scales []scale) string {
	for _, s := range scales {
		if value >= s.threshold {
			return fmt.Sprintf("%.2f %s", value/s.threshold, s.suffix)
		}
	}
	return fmt.Sprintf("%.0f", value)
}
