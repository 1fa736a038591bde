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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mchmarny/rando/pkg/info"
	"github.com/mchmarny/rando/pkg/logging"
	"github.com/mchmarny/rando/pkg/metrics"
	"github.com/mchmarny/rando/pkg/random"
	"github.com/mchmarny/rando/pkg/server"
)

const (
	// InfoPath serves the ServiceInfo record.
	InfoPath = "/service/info"
	// RandomPath serves a random draw.
	RandomPath = "/service/random"
)

// Config holds the process level settings collected by the CLI.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// Server carries listener, rate limit and timeout settings.
	// Name, Version and Handlers are filled in by Serve.
	Server *server.Config

	// Info customizes how the ServiceInfo record is computed.
	Info []info.Option

	// Random customizes the random generator.
	Random []random.Option
}

// NewConfig returns a Config with server defaults and environment overrides.
func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		Server:   server.NewConfig(),
	}
}

// Serve computes the ServiceInfo, registers the routes and runs the server
// until ctx is canceled or the process receives SIGINT/SIGTERM.
// A STARTUP_FAILURE is returned before anything listens.
func Serve(ctx context.Context, cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}

	s, rec, err := build(cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		return err
	}

	slog.Info("starting", "info", rec)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// build assembles the server without starting it.
func build(cfg *Config) (*server.Server, info.ServiceInfo, error) {
	rec, err := info.New(cfg.Info...)
	if err != nil {
		return nil, info.ServiceInfo{}, err
	}

	logging.SetDefaultStructuredLoggerWithLevel(rec.AppName, rec.ServerVersion, cfg.LogLevel)

	collector, err := metrics.NewCollector(rec.AppName)
	if err != nil {
		return nil, info.ServiceInfo{}, err
	}

	if err := collector.RegisterInfoGauge(rec); err != nil {
		return nil, info.ServiceInfo{}, err
	}

	gen := random.NewGenerator(cfg.Random...)

	routes := map[string]http.HandlerFunc{
		http.MethodGet + " " + InfoPath:   info.Handler(rec),
		http.MethodGet + " " + RandomPath: gen.Handle,
	}

	srvCfg := cfg.Server
	if srvCfg == nil {
		srvCfg = server.NewConfig()
	}

	s := server.New(
		server.WithConfig(srvCfg),
		server.WithName(rec.AppName),
		server.WithVersion(rec.ServerVersion),
		server.WithHandler(routes),
		server.WithMetrics(collector),
	)

	return s, rec, nil
}
