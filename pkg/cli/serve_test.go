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

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/mchmarny/rando/pkg/api"
	"github.com/mchmarny/rando/pkg/logging"
	"github.com/mchmarny/rando/pkg/server"
)

// runServeFlags parses args against the serve flags and returns the mapped config.
func runServeFlags(t *testing.T, args ...string) (*api.Config, error) {
	t.Helper()

	var (
		cfg *api.Config
		err error
	)

	cmd := serveCmd()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg, err = serveConfig(c)
		return nil
	}

	if runErr := cmd.Run(context.Background(), append([]string{"serve"}, args...)); runErr != nil {
		return nil, runErr
	}
	return cfg, err
}

func TestServeConfigDefaults(t *testing.T) {
	t.Setenv(server.EnvPort, "")
	t.Setenv(server.EnvShutdownTimeout, "")
	t.Setenv(logging.EnvLogLevel, "")

	cfg, err := runServeFlags(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.Server.RateLimit != 0 {
		t.Errorf("rate limit = %v, want 0 (disabled)", cfg.Server.RateLimit)
	}
	if cfg.Server.RateLimitBurst != 200 {
		t.Errorf("rate limit burst = %d, want 200", cfg.Server.RateLimitBurst)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want 30s", cfg.Server.ShutdownTimeout)
	}
}

func TestServeConfigFlags(t *testing.T) {
	cfg, err := runServeFlags(t,
		"--port", "8080",
		"--address", "127.0.0.1",
		"--log-level", "DEBUG",
		"--rate-limit", "5",
		"--rate-limit-burst", "10",
		"--shutdown-timeout", "3",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q, want 127.0.0.1:8080", cfg.Server.Addr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
	if cfg.Server.RateLimit != rate.Limit(5) {
		t.Errorf("rate limit = %v, want 5", cfg.Server.RateLimit)
	}
	if cfg.Server.RateLimitBurst != 10 {
		t.Errorf("rate limit burst = %d, want 10", cfg.Server.RateLimitBurst)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown timeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
}

func TestServeConfigEnv(t *testing.T) {
	t.Setenv(server.EnvPort, "9191")
	t.Setenv(server.EnvShutdownTimeout, "7")
	t.Setenv(logging.EnvLogLevel, "warn")

	cfg, err := runServeFlags(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 7*time.Second {
		t.Errorf("shutdown timeout = %v, want 7s", cfg.Server.ShutdownTimeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.LogLevel)
	}
}

func TestServeConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"port out of range", []string{"--port", "70000"}},
		{"negative rate limit", []string{"--rate-limit=-1"}},
		{"zero burst with rate limit", []string{"--rate-limit", "10", "--rate-limit-burst", "0"}},
		{"zero shutdown timeout", []string{"--shutdown-timeout", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runServeFlags(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestServeRejectsUnknownLogLevel(t *testing.T) {
	if _, err := runServeFlags(t, "--log-level", "verbose"); err == nil {
		t.Error("expected invalid log level to fail")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCmd(nil)

	for _, want := range []string{"serve", "info"} {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected subcommand %q", want)
		}
	}

	if cmd.DefaultCommand != "serve" {
		t.Errorf("default command = %q, want serve", cmd.DefaultCommand)
	}
}
