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

package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/mchmarny/rando/pkg/defaults"
	"github.com/mchmarny/rando/pkg/errors"
)

const (
	// EnvPort overrides the listen port.
	EnvPort = "PORT"
	// EnvShutdownTimeout overrides the graceful shutdown timeout, in seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"

	// DefaultMetricsPath is where the Prometheus exposition is served.
	DefaultMetricsPath = "/service/metrics"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// API handlers keyed by ServeMux pattern, e.g. "GET /service/info".
	// They run behind the request ID, recovery, rate limit and logging middleware.
	Handlers map[string]http.HandlerFunc

	// MetricsPath is the scrape endpoint, served when a collector is set.
	MetricsPath string

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second, 0 disables limiting
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns sensible defaults
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Handlers:          map[string]http.HandlerFunc{},
		MetricsPath:       DefaultMetricsPath,
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         defaults.RateLimit,
		RateLimitBurst:    defaults.RateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port from environment",
				"env", EnvPort, "value", portStr, "default", cfg.Port)
		}
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if shutdownStr := os.Getenv(EnvShutdownTimeout); shutdownStr != "" {
		if seconds, err := strconv.Atoi(shutdownStr); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout from environment",
				"env", EnvShutdownTimeout, "value", shutdownStr, "default", cfg.ShutdownTimeout.String())
		}
	}

	return cfg
}

// Validate checks the configuration before the server listens.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.NewWithContext(errors.ErrCodeStartup, "port out of range",
			map[string]any{"port": c.Port})
	}
	if c.RateLimit < 0 {
		return errors.NewWithContext(errors.ErrCodeStartup, "rate limit must not be negative",
			map[string]any{"rateLimit": float64(c.RateLimit)})
	}
	if c.RateLimit > 0 && c.RateLimitBurst < 1 {
		return errors.NewWithContext(errors.ErrCodeStartup, "rate limit burst must be at least 1",
			map[string]any{"rateLimitBurst": c.RateLimitBurst})
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New(errors.ErrCodeStartup, "shutdown timeout must be positive")
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
