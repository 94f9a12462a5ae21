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

package units

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		unit     Unit
		value    float64
		expected string
	}{
		{
			name:     "temperature one decimal",
			unit:     Temperature,
			value:    63.4,
			expected: "63.4 °C",
		},
		{
			name:     "temperature rounds half up",
			unit:     Temperature,
			value:    49.95,
			expected: "50.0 °C",
		},
		{
			name:     "utilization ratio to percent",
			unit:     Utilization,
			value:    0.27,
			expected: "27.0%",
		},
		{
			name:     "utilization zero",
			unit:     Utilization,
			value:    0,
			expected: "0.0%",
		},
		{
			name:     "utilization full",
			unit:     Utilization,
			value:    1,
			expected: "100.0%",
		},
		{
			name:     "power one decimal",
			unit:     Power,
			value:    142.0,
			expected: "142.0 W",
		},
		{
			name:     "memory megabytes",
			unit:     Memory,
			value:    1_048_576,
			expected: "1.00 MB",
		},
		{
			name:     "memory below smallest threshold",
			unit:     Memory,
			value:    512,
			expected: "512",
		},
		{
			name:     "memory exact kilobyte boundary",
			unit:     Memory,
			value:    1024,
			expected: "1.00 KB",
		},
		{
			name:     "memory gigabytes",
			unit:     Memory,
			value:    8 * 1 << 30,
			expected: "8.00 GB",
		},
		{
			name:     "memory terabytes",
			unit:     Memory,
			value:    1 << 40,
			expected: "1.00 TB",
		},
		{
			name:     "frequency gigahertz",
			unit:     Frequency,
			value:    2_500_000_000,
			expected: "2.50 GHz",
		},
		{
			name:     "frequency megahertz",
			unit:     Frequency,
			value:    1_350_000_000 / 10,
			expected: "135.00 MHz",
		},
		{
			name:     "frequency below smallest threshold",
			unit:     Frequency,
			value:    950,
			expected: "950",
		},
		{
			name:     "frequency exact kilohertz boundary",
			unit:     Frequency,
			value:    1000,
			expected: "1.00 kHz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.unit, tt.value)
			if got != tt.expected {
				t.Errorf("Format(%s, %v) = %q, want %q", tt.unit, tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatScaledBoundaries(t *testing.T) {
	// A value exactly at a threshold must select that threshold's suffix,
	// never the next-smaller one.
	boundaries := []struct {
		unit     Unit
		value    float64
		expected string
	}{
		{Memory, 1 << 10, "1.00 KB"},
		{Memory, 1 << 20, "1.00 MB"},
		{Memory, 1 << 30, "1.00 GB"},
		{Memory, 1 << 40, "1.00 TB"},
		{Frequency, 1e3, "1.00 kHz"},
		{Frequency, 1e6, "1.00 MHz"},
		{Frequency, 1e9, "1.00 GHz"},
	}

	for _, b := range boundaries {
		if got := Format(b.unit, b.value); got != b.expected {
			t.Errorf("Format(%s, %v) = %q, want %q", b.unit, b.value, got, b.expected)
		}
	}
}

func TestUnitString(t *testing.T) {
	if Temperature.String() != "temperature" {
		t.Errorf("unexpected string: %s", Temperature.String())
	}
}
