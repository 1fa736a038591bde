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

import "net/http"

// StatusWriter wraps http.ResponseWriter to track the response status and
// ignore header writes after the first one.
type StatusWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// NewStatusWriter wraps w. The status defaults to 200 until written.
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	if sw, ok := w.(*StatusWriter); ok {
		return sw
	}
	return &StatusWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader writes the HTTP status code. Only the first call takes effect.
func (sw *StatusWriter) WriteHeader(statusCode int) {
	if sw.written {
		return
	}
	sw.statusCode = statusCode
	sw.ResponseWriter.WriteHeader(statusCode)
	sw.written = true
}

// Write writes the response body, sending a 200 header first if none was written.
func (sw *StatusWriter) Write(b []byte) (int, error) {
	if !sw.written {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// Status returns the HTTP status code that was written.
func (sw *StatusWriter) Status() int {
	return sw.statusCode
}

// Written reports whether a header has been sent.
func (sw *StatusWriter) Written() bool {
	return sw.written
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (sw *StatusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
