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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gpustat/gpustat/pkg/collector/gpu"
	"github.com/gpustat/gpustat/pkg/serializer"
	"github.com/gpustat/gpustat/pkg/snapshotter"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "output format (json, yaml, table)",
		Value:   string(serializer.FormatJSON),
	}

	metricsFileFlag = &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "write collection metrics to this file in Prometheus text format",
	}
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Capture a GPU telemetry snapshot document",
		Description: `Read telemetry from every AMD GPU and emit a single versioned document
with run metadata instead of one line per device. Failed devices are
listed in the document rather than aborting the run.

The document can be output in JSON, YAML, or table format.

# Examples

Snapshot to stdout as JSON:
  gpustat snapshot

Snapshot to a file as YAML:
  gpustat snapshot --format yaml --output gpus.yaml

Snapshot and record collection metrics:
  gpustat snapshot --metrics-file /var/lib/node_exporter/gpustat.prom`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			metricsFileFlag,
			sysfsRootFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			s := snapshotter.GPUSnapshotter{
				Version:    version,
				Collector:  gpu.NewCollector(gpu.WithRoot(cmd.String("sysfs-root"))),
				Serializer: serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")),
			}

			if err := s.Snapshot(ctx); err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := snapshotter.WriteMetricsTextfile(path); err != nil {
					return fmt.Errorf("failed to write metrics file: %w", err)
				}
			}

			return nil
		},
	}
}
