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
	"context"
	"encoding/json"
	"io"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oracleconfig"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oraclemsgs"
	"gopkg.in/yaml.v2"
)

func writeOutput(ctx context.Context, w io.Writer, v interface{}) error {
	format := outputType
	if format == "" {
		format = config.GetString(oracleconfig.CLIOutput)
	}
	var b []byte
	var err error
	switch format {
	case oracleconfig.OutputJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case oracleconfig.OutputYAML:
		b, err = yaml.Marshal(v)
	default:
		return i18n.NewError(ctx, oraclemsgs.MsgInvalidOutputType, format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
