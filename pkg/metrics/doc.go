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

// Package metrics instruments HTTP traffic and renders it for Prometheus.
//
// A Collector owns a private prometheus.Registry created once at startup and
// handed to the HTTP layer; nothing registers against the global default
// registry. The registry carries:
//
//   - <app>_http_request_duration_seconds: histogram by path, method, status_code
//   - <app>_http_requests_total: counter by path, method, status_code
//   - <app>_http_requests_in_flight: gauge of requests currently being served
//   - <app>_server_info: static info gauge, value 1, labeled with the service identity
//   - up: always 1 while the process serves
//   - Go runtime and process collectors
//
// Collector.Instrument wraps the whole router, so every path is observed,
// including unmatched ones and the scrape endpoint itself.
package metrics
