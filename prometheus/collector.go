// Copyright (c) 2026 EngineKit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package prometheus exposes intern registry statistics as Prometheus
// metrics, for leak and churn dashboards.
package prometheus

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/enginekit/intern"
)

var (
	descStrings = prom.NewDesc(
		"intern_registry_strings",
		"Number of distinct interned strings.",
		nil, nil,
	)
	descBytes = prom.NewDesc(
		"intern_registry_bytes",
		"Total length in bytes of all interned strings.",
		nil, nil,
	)
	descCapacity = prom.NewDesc(
		"intern_registry_capacity",
		"Maximum number of strings the registry can hold.",
		nil, nil,
	)
	descTracked = prom.NewDesc(
		"intern_registry_tracked_handles",
		"Number of handles with outstanding tracked references.",
		nil, nil,
	)
)

// NewCollector creates a prometheus.Collector reading from the given
// registry. Collection calls Stats only; it never mutates the registry.
func NewCollector(registry intern.Registry) prom.Collector {
	return &collector{registry: registry}
}

type collector struct {
	registry intern.Registry
}

func (c *collector) Describe(ch chan<- *prom.Desc) {
	ch <- descStrings
	ch <- descBytes
	ch <- descCapacity
	ch <- descTracked
}

func (c *collector) Collect(ch chan<- prom.Metric) {
	stats := c.registry.Stats()
	ch <- prom.MustNewConstMetric(descStrings, prom.GaugeValue, float64(stats.InternedStrings))
	ch <- prom.MustNewConstMetric(descBytes, prom.GaugeValue, float64(stats.InternedBytes))
	ch <- prom.MustNewConstMetric(descCapacity, prom.GaugeValue, float64(stats.Capacity))
	ch <- prom.MustNewConstMetric(descTracked, prom.GaugeValue, float64(stats.TrackedHandles))
}
