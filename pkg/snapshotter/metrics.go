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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection metrics
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gpustat_collection_duration_seconds",
			Help:    "Time taken to collect telemetry from all discovered devices",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	collectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gpustat_collection_total",
			Help: "Total number of collection runs",
		},
		[]string{"status"}, // success or error
	)

	deviceReadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gpustat_device_read_duration_seconds",
			Help:    "Time taken by individual per-device read pipelines",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	deviceCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gpustat_devices",
			Help: "Number of AMD GPU devices found by the last discovery",
		},
	)

	deviceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gpustat_device_failures_total",
			Help: "Total number of per-device pipelines that ended in an error",
		},
	)
)

// WriteMetricsTextfile dumps the collection metrics to path in Prometheus
// text exposition format, suitable for the node_exporter textfile collector.
func WriteMetricsTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
