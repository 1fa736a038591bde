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
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/mchmarny/rando/pkg/serializer"
)

const rootPattern = "GET /{$}"

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler, exact root only so other paths still 404
	if _, ok := s.config.Handlers[rootPattern]; !ok {
		mux.HandleFunc(rootPattern, s.handleDefault)
	}

	// System endpoints (no rate limiting)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)

	// API endpoints with middleware
	for pattern, h := range s.config.Handlers {
		mux.HandleFunc(pattern, s.withMiddleware(h))
	}

	if s.metrics == nil {
		return mux
	}

	mux.Handle("GET "+s.config.MetricsPath, s.metrics.Handler())

	// Wildcard instrumentation: every path, the scrape endpoint included.
	return s.metrics.Instrument(mux)
}

// routes lists the registered patterns.
func (s *Server) routes() []string {
	r := []string{"GET /health", "GET /ready"}
	for pattern := range s.config.Handlers {
		r = append(r, pattern)
	}
	if s.metrics != nil {
		r = append(r, "GET "+s.config.MetricsPath)
	}
	sort.Strings(r)
	return r
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
