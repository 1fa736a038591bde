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
	"time"
	_ "time/tzdata" // launch date is rendered in a fixed zone regardless of host tzdata

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/utils/clock"

	"github.com/mchmarny/rando/pkg/errors"
)

const (
	// DefaultTimeZone is the zone the launch date is rendered in.
	DefaultTimeZone = "America/Chicago"

	// LaunchDateLayout mirrors the en-US locale rendering, e.g. "1/2/2006, 3:04:05 PM".
	LaunchDateLayout = "1/2/2006, 3:04:05 PM"
)

// ServiceInfo is the static build and runtime identity of a running process.
type ServiceInfo struct {
	LaunchDate    string `json:"launchDate" yaml:"launchDate"`
	ServerName    string `json:"serverName" yaml:"serverName"`
	AppName       string `json:"appName" yaml:"appName"`
	ServerVersion string `json:"serverVersion" yaml:"serverVersion"`
}

// Labels returns the record keyed by its JSON field names.
func (s ServiceInfo) Labels() map[string]string {
	return map[string]string{
		"launchDate":    s.LaunchDate,
		"serverName":    s.ServerName,
		"appName":       s.AppName,
		"serverVersion": s.ServerVersion,
	}
}

// Validate reports the first empty field as a STARTUP_FAILURE.
func (s ServiceInfo) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"launchDate", s.LaunchDate},
		{"serverName", s.ServerName},
		{"appName", s.AppName},
		{"serverVersion", s.ServerVersion},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.NewWithContext(errors.ErrCodeStartup,
				"service info field is empty", map[string]any{"field": f.name})
		}
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (s ServiceInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("launchDate", s.LaunchDate),
		slog.String("serverName", s.ServerName),
		slog.String("appName", s.AppName),
		slog.String("serverVersion", s.ServerVersion),
	)
}

// NameSource supplies the tokens of the generated server name.
// *gofakeit.Faker satisfies it.
type NameSource interface {
	FirstName() string
	Animal() string
}

type options struct {
	clock    clock.PassiveClock
	location *time.Location
	names    NameSource
	name     string
	version  string
}

// Option configures New.
type Option func(*options)

// WithClock sets the clock the launch date is read from.
func WithClock(c clock.PassiveClock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLocation sets the zone the launch date is rendered in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithNameSource sets the generator of server name tokens.
func WithNameSource(ns NameSource) Option {
	return func(o *options) {
		o.names = ns
	}
}

// WithBuild overrides the build metadata otherwise resolved by BuildMetadata.
func WithBuild(name, version string) Option {
	return func(o *options) {
		o.name = name
		o.version = version
	}
}

// New computes the ServiceInfo for this process.
// It fails with a STARTUP_FAILURE when build metadata cannot be resolved.
func New(opts ...Option) (ServiceInfo, error) {
	o := &options{
		clock: clock.RealClock{},
		names: gofakeit.New(0),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.location == nil {
		loc, err := time.LoadLocation(DefaultTimeZone)
		if err != nil {
			return ServiceInfo{}, errors.Wrap(errors.ErrCodeStartup, "failed to load launch time zone", err)
		}
		o.location = loc
	}

	if o.name == "" || o.version == "" {
		name, version, err := BuildMetadata()
		if err != nil {
			return ServiceInfo{}, err
		}
		if o.name == "" {
			o.name = name
		}
		if o.version == "" {
			o.version = version
		}
	}

	rec := ServiceInfo{
		LaunchDate:    o.clock.Now().In(o.location).Format(LaunchDateLayout),
		ServerName:    ServerName(o.names),
		AppName:       o.name,
		ServerVersion: o.version,
	}

	if err := rec.Validate(); err != nil {
		return ServiceInfo{}, err
	}

	return rec, nil
}

// ServerName composes a display name such as "Maria the Otter".
func ServerName(ns NameSource) string {
	title := cases.Title(language.AmericanEnglish)
	return title.String(ns.FirstName()) + " the " + title.String(ns.Animal())
}
