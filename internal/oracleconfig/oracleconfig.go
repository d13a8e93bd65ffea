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

package oracleconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// CodecEnforceRange rejects values outside [-2^127, 2^127-1] before they are split into hi/lo halves
	CodecEnforceRange = ffc("codec.enforceRange")
	// CLIOutput is the default output format of the CLI commands
	CLIOutput = ffc("cli.output")
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func setDefaults() {
	viper.SetDefault(string(CodecEnforceRange), true)
	viper.SetDefault(string(CLIOutput), OutputJSON)
}

func Reset() {
	config.RootConfigReset(setDefaults)
}
