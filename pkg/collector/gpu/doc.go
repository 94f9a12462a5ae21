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

// Package gpu collects runtime telemetry from AMD GPUs via sysfs.
//
// # Discovery
//
// Devices are enumerated from /sys/class/drm. An entry qualifies when its
// name starts with "card" and its device/vendor file trims to 0x1002, the
// AMD PCI vendor identifier. Connector entries (card0-DP-1 etc.) and GPUs
// from other vendors are skipped silently; only a failure to list the
// device-class directory itself is an error.
//
// # Collected Data
//
// Six metrics are read per device, each from its own pseudo-file:
//
//   - temperature: hwmon temp1_input, millidegrees Celsius
//   - core clock: hwmon freq1_input, hertz
//   - power draw: hwmon power1_average, microwatts
//   - utilization: device/gpu_busy_percent, percent
//   - VRAM used: device/mem_info_vram_used, bytes
//   - VRAM total: device/mem_info_vram_total, bytes
//
// The hwmon subdirectory name is assigned by the kernel at boot and is not
// predictable, so LocateSensorDir probes <device>/device/hwmon for the
// subdirectory containing temp1_input.
//
// # Usage
//
// Create and use the collector:
//
//	collector := gpu.NewCollector()
//	devices, err := collector.Discover(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, device := range devices {
//	    record, err := collector.ReadDevice(ctx, device)
//	    if err != nil {
//	        // this device failed; siblings are unaffected
//	        continue
//	    }
//	    fmt.Println(record)
//	}
//
// # Error Handling
//
// Records are assembled atomically: any failed read aborts that device and
// ReadDevice returns an error instead of a partial record. Errors carry
// structured codes (NOT_FOUND, IO_ERROR, PARSE_ERROR) for programmatic
// handling.
//
// # Testing
//
// WithRoot relocates the device-class directory, letting tests exercise the
// full discovery and read pipeline against a synthetic sysfs tree.
package gpu
