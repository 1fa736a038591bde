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
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/mchmarny/rando/pkg/errors"
)

type fakeNames struct {
	first, animal string
}

func (f fakeNames) FirstName() string { return f.first }
func (f fakeNames) Animal() string    { return f.animal }

var launch = time.Date(2025, time.March, 4, 19, 5, 6, 0, time.UTC)

func TestNew(t *testing.T) {
	rec, err := New(
		WithClock(testingclock.NewFakePassiveClock(launch)),
		WithNameSource(fakeNames{first: "maria", animal: "sea otter"}),
		WithBuild("rando", "1.2.3"),
	)
	require.NoError(t, err)

	// 19:05 UTC is 13:05 in Chicago (CST, UTC-6).
	assert.Equal(t, "3/4/2025, 1:05:06 PM", rec.LaunchDate)
	assert.Equal(t, "Maria the Sea Otter", rec.ServerName)
	assert.Equal(t, "rando", rec.AppName)
	assert.Equal(t, "1.2.3", rec.ServerVersion)
}

func TestNewWithLocation(t *testing.T) {
	rec, err := New(
		WithClock(testingclock.NewFakePassiveClock(launch)),
		WithLocation(time.UTC),
		WithNameSource(fakeNames{first: "Ada", animal: "Cat"}),
		WithBuild("rando", "1.0.0"),
	)
	require.NoError(t, err)
	assert.Equal(t, "3/4/2025, 7:05:06 PM", rec.LaunchDate)
}

func TestNewDefaultNameSource(t *testing.T) {
	rec, err := New(WithBuild("rando", "1.0.0"))
	require.NoError(t, err)

	assert.Regexp(t, `^\S.* the \S.*$`, rec.ServerName)
	assert.NoError(t, rec.Validate())
}

func TestNewBlankNameTokens(t *testing.T) {
	rec, err := New(
		WithNameSource(fakeNames{}),
		WithBuild("rando", "1.0.0"),
	)
	require.NoError(t, err)
	assert.Equal(t, " the ", rec.ServerName)
}

func TestNewStartupFailureWithoutBuildInfo(t *testing.T) {
	restore := stubBuildInfo(t, nil, false)
	defer restore()

	_, err := New(WithNameSource(fakeNames{first: "a", animal: "b"}))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStartup, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	valid := ServiceInfo{
		LaunchDate:    "1/1/2025, 12:00:00 AM",
		ServerName:    "Ada the Cat",
		AppName:       "rando",
		ServerVersion: "1.0.0",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		field  string
		mutate func(*ServiceInfo)
	}{
		{"launchDate", func(s *ServiceInfo) { s.LaunchDate = "" }},
		{"serverName", func(s *ServiceInfo) { s.ServerName = "" }},
		{"appName", func(s *ServiceInfo) { s.AppName = "" }},
		{"serverVersion", func(s *ServiceInfo) { s.ServerVersion = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rec := valid
			tt.mutate(&rec)

			err := rec.Validate()
			require.Error(t, err)

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, errors.ErrCodeStartup, se.Code)
			assert.Equal(t, tt.field, se.Context["field"])
		})
	}
}

func TestLabels(t *testing.T) {
	rec := ServiceInfo{LaunchDate: "d", ServerName: "n", AppName: "a", ServerVersion: "v"}
	assert.Equal(t, map[string]string{
		"launchDate":    "d",
		"serverName":    "n",
		"appName":       "a",
		"serverVersion": "v",
	}, rec.Labels())
}

func TestLogValue(t *testing.T) {
	rec := ServiceInfo{LaunchDate: "d", ServerName: "n", AppName: "a", ServerVersion: "v"}
	attrs := rec.LogValue().Group()
	require.Len(t, attrs, 4)
	assert.Equal(t, "serverName", attrs[1].Key)
	assert.Equal(t, "n", attrs[1].Value.String())
}

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) func() {
	t.Helper()
	prevRead, prevName, prevVersion := readBuildInfo, name, version
	name, version = "", ""
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	return func() {
		readBuildInfo, name, version = prevRead, prevName, prevVersion
	}
}

func TestBuildMetadata(t *testing.T) {
	t.Run("from module info", func(t *testing.T) {
		restore := stubBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/mchmarny/rando", Version: "v0.4.1"},
		}, true)
		defer restore()

		n, v, err := BuildMetadata()
		require.NoError(t, err)
		assert.Equal(t, "rando", n)
		assert.Equal(t, "0.4.1", v)
	})

	t.Run("ldflags win", func(t *testing.T) {
		restore := stubBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/mchmarny/rando", Version: "v0.4.1"},
		}, true)
		defer restore()
		name, version = "custom", "9.9.9"

		n, v, err := BuildMetadata()
		require.NoError(t, err)
		assert.Equal(t, "custom", n)
		assert.Equal(t, "9.9.9", v)
	})

	t.Run("no build info", func(t *testing.T) {
		restore := stubBuildInfo(t, nil, false)
		defer restore()

		_, _, err := BuildMetadata()
		assert.True(t, errors.CodeOf(err) == errors.ErrCodeStartup)
	})

	t.Run("empty module path", func(t *testing.T) {
		restore := stubBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Version: "v1.0.0"},
		}, true)
		defer restore()

		_, _, err := BuildMetadata()
		assert.True(t, errors.CodeOf(err) == errors.ErrCodeStartup)
	})

	t.Run("empty version", func(t *testing.T) {
		restore := stubBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/mchmarny/rando"},
		}, true)
		defer restore()

		_, _, err := BuildMetadata()
		assert.True(t, errors.CodeOf(err) == errors.ErrCodeStartup)
	})
}
