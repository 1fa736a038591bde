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
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mchmarny/rando/pkg/defaults"
	"github.com/mchmarny/rando/pkg/logging"
	"github.com/mchmarny/rando/pkg/metrics"
)

// notifyFunc reports service state to the init system.
type notifyFunc func(state string) (bool, error)

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	metrics     *metrics.Collector
	notify      notifyFunc

	mu       sync.RWMutex
	ready    bool
	listener net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg == nil {
			return
		}
		// Later options must not write through to the caller's config.
		c := *cfg
		c.Handlers = maps.Clone(cfg.Handlers)
		if c.Handlers == nil {
			c.Handlers = map[string]http.HandlerFunc{}
		}
		s.config = &c
	}
}

// WithName sets the server name reported at GET /.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the server version reported at GET / and in response headers.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithHandler adds API handlers keyed by ServeMux pattern.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for pattern, h := range handlers {
			s.config.Handlers[pattern] = h
		}
	}
}

// WithMetrics instruments every route with c and serves its registry at
// Config.MetricsPath.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) {
		s.metrics = c
	}
}

// New creates a new server instance
func New(opts ...Option) *Server {
	s := &Server{
		config: NewConfig(),
		notify: func(state string) (bool, error) {
			return daemon.SdNotify(false, state)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.config.RateLimit > 0 {
		s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          logging.NewLogLogger(slog.LevelWarn),
	}

	return s
}

// Handler returns the fully wired root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Addr returns the bound listener address once the server is listening,
// otherwise the configured address.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Start listens and serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	s.setReady(true)

	slog.Info("server listening",
		"address", ln.Addr().String(),
		"url", serviceURL(ln.Addr()),
	)

	if _, err := s.notify(daemon.SdNotifyReady); err != nil {
		slog.Warn("failed to notify systemd readiness", "error", err)
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.setReady(false)
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	if _, err := s.notify(daemon.SdNotifyStopping); err != nil {
		slog.Warn("failed to notify systemd shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout.String())
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server and blocks until SIGINT/SIGTERM or ctx cancellation.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// serviceURL renders a browsable URL for the public routes.
func serviceURL(addr net.Addr) string {
	port := defaults.ServerPort
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d%s", port, defaults.RoutePrefix)
}
