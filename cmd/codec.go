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
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oracleconfig"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oraclemsgs"
	"github.com/hyperledger/firefly-oracle-sdk/pkg/i128"
	"github.com/spf13/cobra"
)

type encodeResult struct {
	Value     string `json:"value" yaml:"value"`
	i128.HiLo `yaml:",inline"`
	Wire      string `json:"wire,omitempty" yaml:"wire,omitempty"`
}

type decodeResult struct {
	Value     string `json:"value" yaml:"value"`
	i128.HiLo `yaml:",inline"`
}

var encodeWire bool
var decodeWire string

func encodeCommand() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:     "encode <value>",
		Short:   "Split an integer into its 128-bit hi/lo pair",
		Example: "fforacle encode -- -123456789012345678901234567890",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			value, ok := parseValue(args[0])
			if !ok {
				return i18n.NewError(ctx, oraclemsgs.MsgInvalidI128Decimal, "value", args[0])
			}

			var hl *i128.HiLo
			if config.GetBool(oracleconfig.CodecEnforceRange) {
				if hl, err = i128.Encode(ctx, value); err != nil {
					return err
				}
			} else {
				if !i128.InRange(value) {
					log.L(ctx).Warnf("Value %s is outside the signed 128-bit range", value)
				}
				hl = i128.EncodeUnchecked(value)
			}
			log.L(ctx).Debugf("Encoded %s as %s", value, hl)

			res := &encodeResult{Value: value.String(), HiLo: *hl}
			if encodeWire {
				b, err := i128.ToBytes(ctx, value)
				if err != nil {
					return err
				}
				res.Wire = "0x" + hex.EncodeToString(b)
			}
			return writeOutput(ctx, cmd.OutOrStdout(), res)
		},
	}
	encodeCmd.Flags().BoolVarP(&encodeWire, "wire", "w", false, "Include the 16 byte binary field, as hex")
	return encodeCmd
}

func decodeCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <hi> <lo>",
		Short: "Rebuild an integer from its 128-bit hi/lo pair, or from the binary field with --wire",
		Example: `fforacle decode -- -6692605942 -14083847773837265618
fforacle decode --wire 0xffffffffffffffffffffffffffffffff`,
		Args: func(cmd *cobra.Command, args []string) error {
			if decodeWire != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			var value *big.Int
			if decodeWire != "" {
				b, err := hex.DecodeString(strings.TrimPrefix(decodeWire, "0x"))
				if err != nil {
					return i18n.NewError(ctx, oraclemsgs.MsgInvalidI128WireHex, decodeWire, err)
				}
				if value, err = i128.FromBytes(ctx, b); err != nil {
					return err
				}
			} else if value, err = i128.Decode(ctx, args[0], args[1]); err != nil {
				return err
			}
			if !i128.InRange(value) {
				log.L(ctx).Warnf("Decoded value %s is outside the signed 128-bit range", value)
			}
			return writeOutput(ctx, cmd.OutOrStdout(), &decodeResult{
				Value: value.String(),
				HiLo:  *i128.EncodeUnchecked(value),
			})
		},
	}
	decodeCmd.Flags().StringVarP(&decodeWire, "wire", "w", "", "A 16 byte binary field, as hex")
	return decodeCmd
}

// parseValue accepts base 10, or base 16 with a 0x/0X prefix, either with an optional sign
func parseValue(s string) (*big.Int, bool) {
	sign := ""
	unsigned := s
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, unsigned = s[:1], s[1:]
	}
	if len(unsigned) > 2 && (unsigned[:2] == "0x" || unsigned[:2] == "0X") {
		digits := unsigned[2:]
		if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
			return nil, false
		}
		return new(big.Int).SetString(sign+digits, 16)
	}
	return new(big.Int).SetString(s, 10)
}
