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

// Package snapshotter orchestrates GPU telemetry collection.
//
// # Overview
//
// A GPUSnapshotter runs device discovery once, then fans out one goroutine
// per discovered device. Each goroutine owns its device path and derives its
// sensor directory and metric reads independently; there is no shared
// mutable state between device pipelines. The snapshotter joins all
// goroutines before reporting, and results are always reported in discovery
// order regardless of completion order.
//
// # Output Modes
//
// Stream mode emits one line per device: a single-line JSON record on
// stdout, or a prefixed error description on stderr. A device failure never
// affects its siblings and never changes the exit outcome; only a discovery
// failure propagates as an error. Zero discovered devices produces one
// informational line and is a success.
//
// Snapshot mode wraps the same results in a document envelope with a run ID
// and timestamp, serialized through the serializer package in JSON, YAML,
// or table form.
//
// # Metrics
//
// Collection runs are instrumented with Prometheus metrics (durations,
// device counts, failure counts). WriteMetricsTextfile flushes them in text
// exposition format for the node_exporter textfile collector.
package snapshotter
