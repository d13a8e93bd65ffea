// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package cmd

import (
	"encoding/json"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	BuildVersionOverride = "v1.2.3"
	defer func() { BuildVersionOverride = "" }()

	out, err := runCommand("version")
	assert.NoError(t, err)
	var info Info
	err = json.Unmarshal([]byte(out), &info)
	assert.NoError(t, err)
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "Apache-2.0", info.License)
}

func TestVersionShort(t *testing.T) {
	BuildVersionOverride = "v1.2.3"
	defer func() { BuildVersionOverride = "" }()

	out, err := runCommand("version", "--short")
	assert.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestVersionYAML(t *testing.T) {
	out, err := runCommand("version", "-o", "yaml")
	assert.NoError(t, err)
	assert.Contains(t, out, "License: Apache-2.0")
}

func TestSetBuildInfo(t *testing.T) {
	info := &Info{}
	setBuildInfo(info, &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, true)
	assert.Equal(t, "v0.9.0", info.Version)

	info = &Info{}
	setBuildInfo(info, nil, false)
	assert.Empty(t, info.Version)
}
