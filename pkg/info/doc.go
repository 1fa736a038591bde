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

// Package info builds the immutable identity record a rando process reports
// about itself.
//
// The record is computed exactly once at startup by New and then passed by
// value to whatever needs it: the /service/info handler and the metrics
// collector's info gauge. Nothing in this package holds it in a global.
//
//	rec, err := info.New()
//	if err != nil {
//	    return err // STARTUP_FAILURE: do not serve
//	}
//	mux.HandleFunc("GET /service/info", info.Handler(rec))
package info
