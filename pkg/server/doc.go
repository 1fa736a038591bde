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

// Package server implements the rando HTTP dispatcher.
//
// # Architecture
//
// The server is a stateless net/http API built from:
//
//   - A Go 1.22 ServeMux with method-qualified routes
//   - Prometheus instrumentation wrapping the whole mux (every path, including
//     the scrape endpoint and unmatched routes, is observed)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery returning a JSON 500
//   - Opt-in rate limiting using a token bucket (golang.org/x/time/rate)
//   - Health and readiness probes
//   - Graceful shutdown and systemd readiness notification
//
// # Usage
//
//	s := server.New(
//	    server.WithName("rando"),
//	    server.WithVersion(version),
//	    server.WithMetrics(collector),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /service/info":   info.Handler(rec),
//	        "GET /service/random": gen.Handle,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
//	GET /service/info     - static build and runtime identity
//	GET /service/random   - {"random": 0..99}
//	GET /service/metrics  - Prometheus exposition
//	GET /health           - liveness, always 200
//	GET /ready            - readiness, 200 when serving, 503 otherwise
//	GET /                 - name, version and route listing
//
// Any other path is left to the mux: 404, or 405 for a known path with the
// wrong method.
//
// # Error Handling
//
// Errors produced by the server itself return a consistent JSON structure:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// # Configuration
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the defaults from pkg/defaults.
package server
