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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mchmarny/rando/pkg/errors"
	"github.com/mchmarny/rando/pkg/metrics"
)

// withMiddleware wraps API handlers with common middleware.
// Instrumentation is applied once around the whole mux, not here.
func (s *Server) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.identityMiddleware(
		s.requestIDMiddleware(
			s.panicRecoveryMiddleware( // Recover first to prevent token waste on panics
				s.rateLimitMiddleware(
					s.loggingMiddleware(handler),
				),
			),
		),
	)
}

// Middleware implementations

// requestIDMiddleware extracts or generates request IDs
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Validate UUID format if provided
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		// Store in context and response header
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware implements rate limiting. Without a limiter it is a no-op.
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	if s.rateLimiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow() {
			if s.metrics != nil {
				s.metrics.RateLimited()
			}
			w.Header().Set("Retry-After", "1")
			writeError(w, r, http.StatusTooManyRequests, errors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(s.config.RateLimit)))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(s.rateLimiter.Tokens())))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		next.ServeHTTP(w, r)
	}
}

// panicRecoveryMiddleware recovers from panics
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			// The client connection is gone; let net/http handle it.
			if err == http.ErrAbortHandler {
				panic(err)
			}

			if s.metrics != nil {
				s.metrics.PanicRecovered()
			}

			var errMsg string
			switch v := err.(type) {
			case error:
				errMsg = v.Error()
			default:
				errMsg = fmt.Sprintf("%v", v)
			}
			slog.Error("panic recovered",
				"error", errMsg,
				"requestID", r.Context().Value(contextKeyRequestID),
				"path", r.URL.Path,
				"method", r.Method,
			)
			writeError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
				"Internal server error", true, nil)
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware logs requests
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Context().Value(contextKeyRequestID)

		rw := metrics.NewStatusWriter(w)

		slog.Debug("request started",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(rw, r)

		slog.Debug("request completed",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
