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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	require.NoError(t, writer.Serialize(context.Background(), testConfig{Name: "test1", Value: 123}))

	var result testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, testConfig{Name: "test1", Value: 123}, result)
	assert.Contains(t, buf.String(), "\n  \"name\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	require.NoError(t, writer.Serialize(context.Background(), testConfig{Name: "test2", Value: 456}))

	var result testConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, testConfig{Name: "test2", Value: 456}, result)
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	require.NoError(t, writer.Serialize(context.Background(), testConfig{Name: "x"}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestWriter_NilOutputUsesStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	assert.NotNil(t, writer.output)
}

func TestFormat_IsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.True(t, Format("table").IsUnknown())
	assert.True(t, Format("").IsUnknown())
	assert.Equal(t, []string{"json", "yaml"}, SupportedFormats())
}
