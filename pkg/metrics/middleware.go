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

package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ValuePlaceholder replaces identifier-like path segments.
const ValuePlaceholder = "#val"

// Instrument wraps next so every request is timed and counted under its
// normalized path, method and response status. The in-flight gauge covers
// the call. A panic in next is recorded as a 500 and then re-raised.
func (c *Collector) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := c.clock.Now()
		c.requestsInFlight.Inc()

		sw := NewStatusWriter(w)

		defer func() {
			c.requestsInFlight.Dec()

			status := sw.Status()
			p := recover()
			if p != nil {
				status = http.StatusInternalServerError
			}

			c.Observe(NormalizePath(r.URL.Path), r.Method, status, c.clock.Since(start).Seconds())

			if p != nil {
				panic(p)
			}
		}()

		next.ServeHTTP(sw, r)
	})
}

// Observe records one completed request.
func (c *Collector) Observe(path, method string, status int, seconds float64) {
	labels := prometheus.Labels{
		LabelPath:   path,
		LabelMethod: method,
		LabelStatus: strconv.Itoa(status),
	}
	c.requestDuration.With(labels).Observe(seconds)
	c.requestsTotal.With(labels).Inc()
}

// NormalizePath collapses numeric and UUID segments into ValuePlaceholder so
// paths carrying identifiers share one series.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if isNumeric(s) || isUUID(s) {
			segments[i] = ValuePlaceholder
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil && strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	}) == -1
}

func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
