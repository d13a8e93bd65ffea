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

// Package i128 converts between arbitrary precision integers and the
// {hi, lo} decimal pair used to carry signed 128-bit prices and fees.
//
// The pair satisfies value = hi * 2^64 + lo, where hi and lo are the
// quotient and remainder of division by 2^64 truncated toward zero. Each
// half carries its own sign, so -1 encodes as {hi: "0", lo: "-1"}. This is
// not the two's complement split of the wire words; see ToWords for that.
package i128

import (
	"context"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oraclemsgs"
)

var (
	two64    = new(big.Int).Lsh(big.NewInt(1), 64)
	maxValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minValue = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// HiLo is the decimal string pair for a signed 128-bit value
type HiLo struct {
	Hi string `json:"hi"`
	Lo string `json:"lo"`
}

// Max returns 2^127-1
func Max() *big.Int { return new(big.Int).Set(maxValue) }

// Min returns -2^127
func Min() *big.Int { return new(big.Int).Set(minValue) }

// InRange reports whether v fits in a signed 128-bit integer
func InRange(v *big.Int) bool {
	return v != nil && v.Cmp(minValue) >= 0 && v.Cmp(maxValue) <= 0
}

// Encode splits value into its {hi, lo} pair, rejecting values outside
// the signed 128-bit range.
func Encode(ctx context.Context, value *big.Int) (*HiLo, error) {
	if value == nil {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgMissingI128Value)
	}
	if !InRange(value) {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgI128OutOfRange, value.String())
	}
	return EncodeUnchecked(value), nil
}

// EncodeUnchecked performs the same split as Encode without a range check.
// Out of range inputs produce a hi half that does not fit in 64 bits.
func EncodeUnchecked(value *big.Int) *HiLo {
	hi, lo := new(big.Int).QuoRem(value, two64, new(big.Int))
	return &HiLo{
		Hi: hi.String(),
		Lo: lo.String(),
	}
}

// EncodeFFBigInt is Encode for values parsed from JSON
func EncodeFFBigInt(ctx context.Context, value *fftypes.FFBigInt) (*HiLo, error) {
	if value == nil {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgMissingI128Value)
	}
	return Encode(ctx, value.Int())
}

// Decode reconstructs hi * 2^64 + lo from the decimal halves. The inputs
// are not range checked, and lo may exceed 64 bits.
func Decode(ctx context.Context, hi, lo string) (*big.Int, error) {
	hiInt, err := parseHalf(ctx, "hi", hi)
	if err != nil {
		return nil, err
	}
	loInt, err := parseHalf(ctx, "lo", lo)
	if err != nil {
		return nil, err
	}
	return Compose(hiInt, loInt), nil
}

// Compose returns hi * 2^64 + lo
func Compose(hi, lo *big.Int) *big.Int {
	v := new(big.Int).Mul(hi, two64)
	return v.Add(v, lo)
}

// Value decodes the pair
func (p *HiLo) Value(ctx context.Context) (*big.Int, error) {
	return Decode(ctx, p.Hi, p.Lo)
}

func (p *HiLo) String() string {
	return "{hi:" + p.Hi + ",lo:" + p.Lo + "}"
}

func parseHalf(ctx context.Context, name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgInvalidI128Decimal, name, s)
	}
	return v, nil
}
