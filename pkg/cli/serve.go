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
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/mchmarny/rando/pkg/api"
	"github.com/mchmarny/rando/pkg/defaults"
	"github.com/mchmarny/rando/pkg/info"
	"github.com/mchmarny/rando/pkg/logging"
	"github.com/mchmarny/rando/pkg/server"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func serveCmd(infoOpts ...info.Option) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP service (default)",
		Description: `Serves the following endpoints:
  - GET /service/info     build and runtime information
  - GET /service/random   random integer in [0, 99]
  - GET /service/metrics  Prometheus exposition
  - GET /health, /ready   probes`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   defaults.ServerPort,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars(server.EnvPort),
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind (empty binds all interfaces)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   fmt.Sprintf("Log level (supported values: %s)", strings.Join(logLevels, ", ")),
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Validator: func(v string) error {
					for _, l := range logLevels {
						if strings.EqualFold(v, l) {
							return nil
						}
					}
					return fmt.Errorf("invalid log level: %q", v)
				},
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Value: defaults.RateLimit,
				Usage: "Requests per second allowed on API routes (0 disables limiting)",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Value: defaults.RateLimitBurst,
				Usage: "Burst size allowed on API routes",
			},
			&cli.IntFlag{
				Name:    "shutdown-timeout",
				Value:   int(defaults.ServerShutdownTimeout / time.Second),
				Usage:   "Seconds to wait for in-flight requests on shutdown",
				Sources: cli.EnvVars(server.EnvShutdownTimeout),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Info = infoOpts
			return api.Serve(ctx, cfg)
		},
	}
}

// serveConfig maps the serve flags onto an api.Config.
func serveConfig(cmd *cli.Command) (*api.Config, error) {
	cfg := api.NewConfig()

	cfg.LogLevel = strings.ToLower(cmd.String("log-level"))
	cfg.Server.Port = cmd.Int("port")
	cfg.Server.Address = cmd.String("address")
	cfg.Server.RateLimit = rate.Limit(cmd.Float64("rate-limit"))
	cfg.Server.RateLimitBurst = cmd.Int("rate-limit-burst")
	cfg.Server.ShutdownTimeout = time.Duration(cmd.Int("shutdown-timeout")) * time.Second

	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("invalid serve flags: %w", err)
	}

	return cfg, nil
}
