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

package gpu

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gpustat/gpustat/pkg/collector/file"
	"github.com/gpustat/gpustat/pkg/errors"
	"github.com/gpustat/gpustat/pkg/telemetry"
	"github.com/gpustat/gpustat/pkg/units"
)

const (
	// defaultRoot is the device-class directory enumerating DRM nodes.
	defaultRoot = "/sys/class/drm"

	// devicePrefix identifies display/graphics card entries. Connector
	// entries (card0-DP-1 and the like) share the prefix but carry no
	// device/vendor file, so the vendor check excludes them.
	devicePrefix = "card"

	// vendorAMD is the PCI vendor identifier for AMD.
	vendorAMD = "0x1002"

	// sensorProbeFile marks a hwmon subdirectory as the one exposing this
	// device's sensors. Hwmon directory names are assigned dynamically at
	// boot, so the mapping must be probed.
	sensorProbeFile = "temp1_input"
)

// Options for configuring the Collector.
type Option func(*Collector)

// WithRoot overrides the device-class directory scanned for GPU devices.
// Intended for tests using synthetic sysfs trees.
func WithRoot(root string) Option {
	return func(c *Collector) {
		c.root = root
	}
}

// WithParser overrides the pseudo-file parser used for all reads.
func WithParser(p *file.Parser) Option {
	return func(c *Collector) {
		c.parser = p
	}
}

// Collector reads AMD GPU telemetry from the DRM device-class tree.
// It is read-only with respect to the filesystem and safe for use from
// multiple goroutines.
type Collector struct {
	root   string
	parser *file.Parser
}

// NewCollector creates a Collector with the provided options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		root:   defaultRoot,
		parser: file.NewParser(),
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover scans the device-class directory and returns the paths of AMD GPU
// device nodes in directory-listing order. An entry qualifies when its name
// carries the card prefix and its device/vendor file trims to the AMD vendor
// identifier. Entries with unreadable or mismatched vendor files are silently
// excluded. Discover fails only if the device-class directory itself cannot
// be listed.
func (c *Collector) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("failed to list device directory %q", c.root), err)
	}

	var devices []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), devicePrefix) {
			continue
		}

		devicePath := filepath.Join(c.root, entry.Name())

		vendor, err := c.parser.GetValue(filepath.Join(devicePath, "device", "vendor"))
		if err != nil {
			// Not an error: connector entries and non-PCI nodes have no
			// vendor file.
			slog.Debug("skipping entry without readable vendor file",
				slog.String("entry", entry.Name()))
			continue
		}

		if vendor != vendorAMD {
			slog.Debug("skipping non-AMD device",
				slog.String("entry", entry.Name()),
				slog.String("vendor", vendor))
			continue
		}

		devices = append(devices, devicePath)
	}

	slog.Debug("device discovery complete", slog.Int("count", len(devices)))
	return devices, nil
}

// LocateSensorDir returns the first subdirectory of <device>/device/hwmon
// that contains the temperature sensor file. It fails with a NOT_FOUND error
// when no subdirectory qualifies or when the hwmon directory cannot be listed.
func (c *Collector) LocateSensorDir(devicePath string) (string, error) {
	hwmonRoot := filepath.Join(devicePath, "device", "hwmon")

	entries, err := os.ReadDir(hwmonRoot)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("failed to list hwmon directory %q", hwmonRoot), err)
	}

	for _, entry := range entries {
		dir := filepath.Join(hwmonRoot, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, sensorProbeFile)); err == nil {
			return dir, nil
		}
	}

	return "", errors.New(errors.ErrCodeNotFound,
		fmt.Sprintf("no hwmon directory with %s found under %q", sensorProbeFile, hwmonRoot))
}

// ReadDevice locates the device's sensor directory and reads the six
// telemetry metrics, returning a fully formatted record. Any failed read
// aborts the whole device: no partial record is ever returned.
func (c *Collector) ReadDevice(ctx context.Context, devicePath string) (*telemetry.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sensorDir, err := c.LocateSensorDir(devicePath)
	if err != nil {
		return nil, err
	}

	temperature, err := file.ReadNumber(c.parser, sensorDir, "temp1_input",
		func(milli int64) float64 { return float64(milli) / 1000 })
	if err != nil {
		return nil, err
	}

	coreClock, err := file.ReadNumber(c.parser, sensorDir, "freq1_input",
		func(hz float64) float64 { return hz })
	if err != nil {
		return nil, err
	}

	power, err := file.ReadNumber(c.parser, sensorDir, "power1_average",
		func(micro float64) float64 { return micro / 1_000_000 })
	if err != nil {
		return nil, err
	}

	load, err := file.ReadNumber(c.parser, devicePath, "device/gpu_busy_percent",
		func(pct float64) float64 { return pct / 100 })
	if err != nil {
		return nil, err
	}

	vramUsed, err := file.ReadNumber(c.parser, devicePath, "device/mem_info_vram_used",
		func(b float64) float64 { return b })
	if err != nil {
		return nil, err
	}

	vramTotal, err := file.ReadNumber(c.parser, devicePath, "device/mem_info_vram_total",
		func(b float64) float64 { return b })
	if err != nil {
		return nil, err
	}

	return &telemetry.Record{
		Temperature: units.Format(units.Temperature, temperature),
		Load:        units.Format(units.Utilization, load),
		CoreClock:   units.Format(units.Frequency, coreClock),
		PowerUsage:  units.Format(units.Power, power),
		VRAMUsed:    units.Format(units.Memory, vramUsed),
		VRAMTotal:   units.Format(units.Memory, vramTotal),
	}, nil
}
