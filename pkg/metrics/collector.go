// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/utils/clock"

	"github.com/mchmarny/rando/pkg/errors"
	"github.com/mchmarny/rando/pkg/info"
)

// Label names of the request metrics.
const (
	LabelPath   = "path"
	LabelMethod = "method"
	LabelStatus = "status_code"
)

// Collector owns the metric state of one process.
type Collector struct {
	registry *prometheus.Registry
	prefix   string
	clock    clock.PassiveClock
	buckets  []float64

	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	requestsInFlight prometheus.Gauge
	panicRecoveries  prometheus.Counter
	rateLimitRejects prometheus.Counter
	serverInfo       *prometheus.GaugeVec

	mu   sync.Mutex
	info *info.ServiceInfo
}

// Option configures a Collector.
type Option func(*Collector)

// WithBuckets overrides the request duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Collector) {
		c.buckets = buckets
	}
}

// WithClock sets the clock request durations are measured with.
func WithClock(clk clock.PassiveClock) Option {
	return func(c *Collector) {
		c.clock = clk
	}
}

// NewCollector creates the registry and registers every rando metric on it.
// appName prefixes the application metrics; characters not allowed in a
// metric name are replaced with underscores.
func NewCollector(appName string, opts ...Option) (*Collector, error) {
	prefix, err := MetricPrefix(appName)
	if err != nil {
		return nil, err
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		prefix:   prefix,
		clock:    clock.RealClock{},
		buckets:  prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}
	if err := c.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("registering process collector: %w", err)
	}

	factory := promauto.With(c.registry)
	requestLabels := []string{LabelPath, LabelMethod, LabelStatus}

	c.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "duration histogram of http responses labeled with: " + strings.Join(requestLabels, ", "),
			Buckets: c.buckets,
		},
		requestLabels,
	)

	c.requestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		requestLabels,
	)

	c.requestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	c.panicRecoveries = factory.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)

	c.rateLimitRejects = factory.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	c.serverInfo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_server_info",
			Help: appName + " server info provides build and runtime information",
		},
		[]string{"launchDate", "serverName", "appName", "serverVersion"},
	)

	factory.NewGauge(prometheus.GaugeOpts{
		Name: "up",
		Help: "1 = up, 0 = not up",
	}).Set(1)

	return c, nil
}

// MetricPrefix turns an application name into a valid metric name prefix.
func MetricPrefix(appName string) (string, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return "", errors.New(errors.ErrCodeStartup, "metric prefix requires an application name")
	}

	var b strings.Builder
	for i, r := range appName {
		switch {
		case r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String(), nil
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Prefix returns the sanitized application metric prefix.
func (c *Collector) Prefix() string {
	return c.prefix
}

// RegisterInfoGauge publishes rec as the single <app>_server_info series.
// Registering the same record again is a no-op; a different record is rejected.
func (c *Collector) RegisterInfoGauge(rec info.ServiceInfo) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.info != nil {
		if *c.info == rec {
			return nil
		}
		return errors.NewWithContext(errors.ErrCodeInternal, "server info gauge already registered",
			map[string]any{"serverName": c.info.ServerName})
	}

	c.serverInfo.With(prometheus.Labels(rec.Labels())).Set(1)
	c.info = &rec
	return nil
}

// PanicRecovered counts a panic that a handler recovered from.
func (c *Collector) PanicRecovered() {
	c.panicRecoveries.Inc()
}

// RateLimited counts a request rejected by the rate limiter.
func (c *Collector) RateLimited() {
	c.rateLimitRejects.Inc()
}

// Handler renders the registry in the Prometheus exposition format.
// OpenMetrics is served when the scraper negotiates it.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
		ErrorHandling:     promhttp.ContinueOnError,
		EnableOpenMetrics: true,
	})
}
