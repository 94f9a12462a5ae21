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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gpustat/gpustat/pkg/collector/gpu"
	"github.com/gpustat/gpustat/pkg/logging"
	"github.com/gpustat/gpustat/pkg/snapshotter"
)

const (
	name           = "gpustat"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared between the root command and its subcommands.
var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}

	sysfsRootFlag = &cli.StringFlag{
		Name:  "sysfs-root",
		Usage: "DRM class directory to enumerate devices from",
		Value: "/sys/class/drm",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "AMD GPU telemetry reporter",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Enumerates AMD GPUs through the DRM subsystem and prints one line of
telemetry per device: temperature, load, core clock, power draw, and
VRAM usage. Running with no arguments reads every device once and exits.

Each line is a JSON object with human-readable values:

  {"GPU Temperature":"63.4 °C","GPU Load":"27.0%", ...}

The snapshot subcommand wraps the same readings in a versioned document
suitable for files and machine consumption.`,
		Flags: []cli.Flag{
			logLevelFlag,
			sysfsRootFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := snapshotter.GPUSnapshotter{
				Version:   version,
				Collector: gpu.NewCollector(gpu.WithRoot(cmd.String("sysfs-root"))),
			}
			return s.Stream(ctx)
		},
		Commands: []*cli.Command{
			snapshotCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and only returns
// through os.Exit.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}
