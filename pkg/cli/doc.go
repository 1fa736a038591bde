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

// Package cli implements the command-line interface for the rando service.
//
// # Commands
//
// serve (default) - Run the HTTP service:
//
//	rando [serve] [--port 3000] [--address ADDR] [--log-level info]
//	      [--rate-limit 100] [--rate-limit-burst 200] [--shutdown-timeout 30]
//
// Flags fall back to the PORT, LOG_LEVEL and SHUTDOWN_TIMEOUT_SECONDS
// environment variables.
//
// info - Print the ServiceInfo this process would report:
//
//	rando info [--format json|yaml]
//
// The record is computed fresh on every invocation, so the server name and
// launch date differ from those of a running server.
package cli
