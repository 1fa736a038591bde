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

import "net/http"

// Identity headers stamped on API responses.
const (
	HeaderServerName    = "X-Server-Name"
	HeaderServerVersion = "X-Server-Version"
)

// identityMiddleware tells clients which build answered the request.
// Useful when several replicas sit behind one load balancer.
func (s *Server) identityMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderServerName, s.config.Name)
		w.Header().Set(HeaderServerVersion, s.config.Version)
		next.ServeHTTP(w, r)
	}
}
