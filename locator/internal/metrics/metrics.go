// Copyright 2023 StreamNative, Inc.
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

package metrics

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tabletdb_locator"

type Metrics struct {
	sinceFunc func(time.Time) time.Duration

	lookups       metric.Int64Counter
	fetchLatency  metric.Float64Histogram
	invalidations metric.Int64Counter
	cachedTablets metric.Int64UpDownCounter
}

func NewMetrics(provider metric.MeterProvider) *Metrics {
	return newMetrics(provider, time.Since)
}

func newMetrics(provider metric.MeterProvider, sinceFunc func(time.Time) time.Duration) *Metrics {
	meter := provider.Meter(meterName)
	return &Metrics{
		sinceFunc: sinceFunc,

		lookups: newCounter(meter, "tabletdb_locator_lookup",
			"Location cache lookups, by hit or miss"),
		fetchLatency: newMillisHistogram(meter, "tabletdb_locator_fetch",
			"Latency of tablet location fetches from the master"),
		invalidations: newCounter(meter, "tabletdb_locator_invalidation",
			"Tablets dropped from the location cache"),
		cachedTablets: newUpDownCounter(meter, "tabletdb_locator_cached_tablets",
			"Tablets currently held in the location cache"),
	}
}

func (m *Metrics) Lookup(hit bool) {
	m.lookups.Add(context.Background(), 1, metric.WithAttributes(lookupResult(hit)))
}

// FetchStarted returns the callback to invoke once the fetch completed.
func (m *Metrics) FetchStarted() func(err error) {
	start := time.Now()
	return func(err error) {
		m.fetchLatency.Record(context.Background(),
			float64(m.sinceFunc(start))/float64(time.Millisecond),
			metric.WithAttributes(result(err)))
	}
}

func (m *Metrics) Invalidated() {
	m.invalidations.Add(context.Background(), 1)
}

func (m *Metrics) CachedTablets(delta int) {
	if delta != 0 {
		m.cachedTablets.Add(context.Background(), int64(delta))
	}
}

func lookupResult(hit bool) attribute.KeyValue {
	if hit {
		return attribute.Key("result").String("hit")
	}
	return attribute.Key("result").String("miss")
}

func result(err error) attribute.KeyValue {
	if err == nil {
		return attribute.Key("result").String("success")
	}
	return attribute.Key("result").String("failure")
}

func newCounter(meter metric.Meter, name string, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	fatalOnErr(err, name)
	return counter
}

func newUpDownCounter(meter metric.Meter, name string, description string) metric.Int64UpDownCounter {
	counter, err := meter.Int64UpDownCounter(name, metric.WithDescription(description))
	fatalOnErr(err, name)
	return counter
}

func newMillisHistogram(meter metric.Meter, name string, description string) metric.Float64Histogram {
	histogram, err := meter.Float64Histogram(name,
		metric.WithUnit("ms"),
		metric.WithDescription(description))
	fatalOnErr(err, name)
	return histogram
}

func fatalOnErr(err error, name string) {
	if err != nil {
		slog.Error(
			"Failed to create metric",
			slog.String("component", "tabletdb-locator"),
			slog.String("metric-name", name),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
