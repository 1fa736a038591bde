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

package info

import (
	"log/slog"
	"net/http"

	"github.com/mchmarny/rando/pkg/serializer"
)

// Handler serves GET /service/info. Every call returns the same record.
func Handler(rec ServiceInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("serving service info", "path", r.URL.Path)
		serializer.RespondJSON(w, http.StatusOK, rec)
	}
}
