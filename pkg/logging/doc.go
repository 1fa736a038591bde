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

// Package logging configures structured logging for rando.
//
// All logs are JSON records written to stderr through log/slog. Every record
// carries the module name and version so records from several replicas can be
// told apart once aggregated.
//
// # Usage
//
// Set the default logger early in main():
//
//	logging.SetDefaultStructuredLoggerWithLevel("rando", version, "info")
//	slog.Info("server listening", "url", "http://localhost:3000/service/")
//
// Create a dedicated logger:
//
//	logger := logging.NewStructuredLogger("rando", "1.0.0", "debug")
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// Unknown or empty values fall back to info. When no level is passed the
// LOG_LEVEL environment variable is consulted.
//
// Debug records include the source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {"function": "...", "file": "middleware.go", "line": 45},
//	    "msg": "request completed",
//	    "module": "rando",
//	    "version": "1.0.0"
//	}
package logging
