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
	"testing"
	"time"

	"github.com/mchmarny/rando/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv(EnvPort, "")
		t.Setenv(EnvShutdownTimeout, "")

		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 3000 {
			t.Errorf("expected port 3000, got %d", cfg.Port)
		}
		if cfg.MetricsPath != "/service/metrics" {
			t.Errorf("expected metrics path /service/metrics, got %s", cfg.MetricsPath)
		}
		if cfg.RateLimit != 0 {
			t.Errorf("expected rate limiting disabled, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.Handlers == nil {
			t.Error("expected handlers map to be initialized")
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv(EnvPort, "9090")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv(EnvPort, "invalid")

		cfg := parseConfig()

		if cfg.Port != 3000 {
			t.Errorf("expected default port 3000 for invalid env, got %d", cfg.Port)
		}
	})

	t.Run("port with trailing garbage uses default", func(t *testing.T) {
		t.Setenv(EnvPort, "3001abc")

		cfg := parseConfig()

		if cfg.Port != 3000 {
			t.Errorf("expected default port 3000 for %q, got %d", "3001abc", cfg.Port)
		}
	})

	t.Run("invalid shutdown timeout uses default", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "45s")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "45")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 45*time.Second {
			t.Errorf("expected shutdown timeout 45s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("non-positive shutdown timeout ignored", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "0")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "ephemeral port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "negative port", mutate: func(c *Config) { c.Port = -1 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "rate limiting disabled", mutate: func(c *Config) { c.RateLimit = 0 }},
		{name: "negative rate", mutate: func(c *Config) { c.RateLimit = -1 }, wantErr: true},
		{name: "zero burst when disabled", mutate: func(c *Config) { c.RateLimitBurst = 0 }},
		{name: "zero burst when limited", mutate: func(c *Config) {
			c.RateLimit = 10
			c.RateLimitBurst = 0
		}, wantErr: true},
		{name: "zero shutdown", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.CodeOf(err) != errors.ErrCodeStartup {
				t.Errorf("expected %s, got %s", errors.ErrCodeStartup, errors.CodeOf(err))
			}
		})
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 8081

	if got := cfg.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("expected 127.0.0.1:8081, got %s", got)
	}
}
