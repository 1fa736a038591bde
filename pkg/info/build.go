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

package info

import (
	"path"
	"runtime/debug"
	"strings"

	"github.com/mchmarny/rando/pkg/errors"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/mchmarny/rando/pkg/info.name=rando"
	// -X "github.com/mchmarny/rando/pkg/info.version=1.0.0"
	name    = ""
	version = ""

	readBuildInfo = debug.ReadBuildInfo
)

// BuildMetadata resolves the application name and version.
// Values injected with ldflags win; otherwise they come from the module
// information embedded by the Go toolchain.
func BuildMetadata() (string, string, error) {
	n, v := name, version

	if n == "" || v == "" {
		bi, ok := readBuildInfo()
		if !ok {
			return "", "", errors.New(errors.ErrCodeStartup, "build metadata is not available")
		}
		if n == "" {
			n = path.Base(strings.TrimSpace(bi.Main.Path))
		}
		if v == "" {
			v = strings.TrimPrefix(strings.TrimSpace(bi.Main.Version), "v")
		}
	}

	// path.Base of an empty path is "."
	if n == "" || n == "." || n == "/" {
		return "", "", errors.New(errors.ErrCodeStartup, "application name is missing from build metadata")
	}
	if v == "" {
		return "", "", errors.New(errors.ErrCodeStartup, "application version is missing from build metadata")
	}

	return n, v, nil
}
