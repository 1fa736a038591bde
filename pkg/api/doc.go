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

// Package api wires the rando service together and runs it.
//
// This package is a thin layer over pkg/server. It computes the ServiceInfo
// record, builds the metrics collector, registers the application routes and
// delegates the server lifecycle to pkg/server.
//
// # Usage
//
//	cfg := api.NewConfig()
//	if err := api.Serve(ctx, cfg); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /service/info   - Build and runtime information for this process
//   - GET /service/random - Random integer in [0, 99]
//
// System endpoints (no rate limiting):
//   - GET /service/metrics - Prometheus exposition
//   - GET /health          - Liveness probe
//   - GET /ready           - Readiness probe
//   - GET /                - Service identity and route list
//
// Every request, matched or not, is recorded in the request duration
// histogram labeled by path, method and status code.
package api
