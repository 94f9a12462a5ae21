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

package snapshotter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gpustat/gpustat/pkg/collector/gpu"
	"github.com/gpustat/gpustat/pkg/serializer"
	"github.com/gpustat/gpustat/pkg/telemetry"
)

// noDevicesMessage is printed on stdout when discovery finds no AMD GPUs.
// This is a success outcome, not an error.
const noDevicesMessage = "No AMD GPUs detected."

// deviceErrorPrefix prefixes per-device failure lines on stderr.
const deviceErrorPrefix = "Error reading GPU data"

// GPUSnapshotter collects telemetry from every discovered AMD GPU.
// It runs one goroutine per device after discovery completes and reports
// results in discovery order once all goroutines have finished.
type GPUSnapshotter struct {
	// Version is the build version recorded in snapshot documents.
	Version string

	// Collector reads devices. If nil, a default sysfs collector is used.
	Collector *gpu.Collector

	// Serializer renders the snapshot document in Snapshot mode.
	// If nil, a stdout JSON writer is used.
	Serializer serializer.Serializer

	// Out receives telemetry lines in Stream mode. Defaults to os.Stdout.
	Out io.Writer

	// ErrOut receives per-device error lines in Stream mode. Defaults to os.Stderr.
	ErrOut io.Writer
}

// Collect discovers devices and runs every per-device pipeline concurrently,
// returning one Result per discovered device in discovery order. It returns
// an error only when discovery itself fails; per-device failures are carried
// inside the Results.
func (s *GPUSnapshotter) Collect(ctx context.Context) ([]telemetry.Result, error) {
	if s.Collector == nil {
		s.Collector = gpu.NewCollector()
	}

	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
	}()

	devices, err := s.Collector.Discover(ctx)
	if err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to discover GPU devices: %w", err)
	}

	deviceCount.Set(float64(len(devices)))

	// One slot per device: goroutines write disjoint indexes, so results
	// stay in discovery order without locking.
	results := make([]telemetry.Result, len(devices))

	g, gctx := errgroup.WithContext(ctx)
	for i, device := range devices {
		g.Go(func() error {
			readStart := time.Now()
			record, err := s.Collector.ReadDevice(gctx, device)
			deviceReadDuration.Observe(time.Since(readStart).Seconds())

			if err != nil {
				deviceFailures.Inc()
				slog.Debug("device pipeline failed",
					slog.String("device", device),
					slog.String("error", err.Error()))
				results[i] = telemetry.Result{Device: device, Err: err}
				return nil
			}

			results[i] = telemetry.Result{Device: device, Record: record}
			return nil
		})
	}

	// Join-all: goroutines never return errors, so Wait blocks until every
	// device pipeline has finished.
	if err := g.Wait(); err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	collectionTotal.WithLabelValues("success").Inc()
	slog.Debug("collection complete", slog.Int("devices", len(results)))

	return results, nil
}

// Stream runs a collection and emits one line per discovered device: the
// record's JSON form on Out, or a prefixed error description on ErrOut.
// When no devices are found it prints a single informational line on Out
// and returns nil. Only a discovery failure yields a non-nil error.
func (s *GPUSnapshotter) Stream(ctx context.Context) error {
	out, errOut := s.writers()

	results, err := s.Collect(ctx)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(out, noDevicesMessage)
		return nil
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", deviceErrorPrefix, res.Err)
			continue
		}

		line, err := res.Record.MarshalLine()
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", deviceErrorPrefix, err)
			continue
		}
		fmt.Fprintln(out, line)
	}

	return nil
}

// Snapshot runs a collection and serializes the results as a single
// snapshot document with run metadata, using the configured Serializer.
func (s *GPUSnapshotter) Snapshot(ctx context.Context) error {
	results, err := s.Collect(ctx)
	if err != nil {
		return err
	}

	snap := telemetry.NewSnapshot(uuid.NewString(), s.Version, results)
	slog.Debug("snapshot assembled",
		slog.String("id", snap.ID),
		slog.Int("records", len(snap.Records)),
		slog.Int("errors", len(snap.Errors)))

	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serializer.Serialize(ctx, snap); err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	return nil
}

func (s *GPUSnapshotter) writers() (io.Writer, io.Writer) {
	out, errOut := s.Out, s.ErrOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return out, errOut
}
