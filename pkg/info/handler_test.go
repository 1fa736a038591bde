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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	rec := ServiceInfo{
		LaunchDate:    "3/4/2025, 1:05:06 PM",
		ServerName:    "Maria the Otter",
		AppName:       "rando",
		ServerVersion: "1.2.3",
	}
	h := Handler(rec)

	var first string
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/service/info", nil)
		w := httptest.NewRecorder()

		h(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		if i == 0 {
			first = w.Body.String()
			continue
		}
		assert.Equal(t, first, w.Body.String(), "response %d differs", i)
	}

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(first), &got))
	assert.Equal(t, rec.Labels(), got)
}
