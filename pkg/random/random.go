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

// Package random serves uniformly distributed integers in [0, 99].
package random

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/mchmarny/rando/pkg/serializer"
)

// Bound is the exclusive upper bound of drawn values.
const Bound = 100

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the runtime-seeded top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Response is the body of GET /service/random.
type Response struct {
	Random int `json:"random" yaml:"random"`
}

// Generator draws values for the random endpoint. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	src Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the default source. Sources need not be goroutine safe.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// NewGenerator returns a Generator backed by the runtime-seeded source
// unless WithSource says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src: globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Draw returns one value in [0, Bound).
func (g *Generator) Draw() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.src.IntN(Bound)
}

// Handle serves GET /service/random.
func (g *Generator) Handle(w http.ResponseWriter, r *http.Request) {
	n := g.Draw()
	slog.Debug("random value drawn", "path", r.URL.Path, "value", n)
	serializer.RespondJSON(w, http.StatusOK, Response{Random: n})
}
