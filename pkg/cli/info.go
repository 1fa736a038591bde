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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/rando/pkg/info"
	"github.com/mchmarny/rando/pkg/serializer"
)

func newFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func infoCmd(infoOpts ...info.Option) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print the service info record",
		Flags: []cli.Flag{
			newFormatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rec, err := info.New(infoOpts...)
			if err != nil {
				return fmt.Errorf("failed to compute service info: %w", err)
			}

			return serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(ctx, rec)
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}
