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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/rando/pkg/info"
)

const (
	name           = "rando"
	versionDefault = "dev"
)

// Execute runs the root command with the process arguments.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(w io.Writer, infoOpts ...info.Option) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "HTTP service reporting build info and random numbers with Prometheus metrics",
		Version:               buildVersion(),
		EnableShellCompletion: true,
		Writer:                w,
		DefaultCommand:        "serve",
		Commands: []*cli.Command{
			serveCmd(infoOpts...),
			infoCmd(infoOpts...),
		},
	}
}

func buildVersion() string {
	_, v, err := info.BuildMetadata()
	if err != nil {
		return versionDefault
	}
	return v
}
