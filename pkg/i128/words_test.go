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

package i128

import (
	"context"
	"encoding/hex"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		value string
		hi    int64
		lo    uint64
	}{
		{"0", 0, 0},
		{"1", 0, 1},
		{"-1", -1, math.MaxUint64},
		{"170141183460469231731687303715884105727", math.MaxInt64, math.MaxUint64},
		{"-170141183460469231731687303715884105728", math.MinInt64, 0},
		{"123456789012345678901234567890", 6692605942, 14083847773837265618},
		{"-123456789012345678901234567890", -6692605943, 4362896299872285998},
	}
	for _, tc := range testCases {
		v := bigInt(t, tc.value)
		hi, lo, err := ToWords(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, tc.hi, hi, tc.value)
		assert.Equal(t, tc.lo, lo, tc.value)
		assert.Zero(t, v.Cmp(FromWords(hi, lo)), tc.value)
	}
}

func TestToWordsErrors(t *testing.T) {
	ctx := context.Background()
	_, _, err := ToWords(ctx, nil)
	assert.Regexp(t, "FF21101", err)
	_, _, err = ToWords(ctx, new(big.Int).Add(Max(), big.NewInt(1)))
	assert.Regexp(t, "FF21102", err)
}

func TestBytes(t *testing.T) {
	ctx := context.Background()

	b, err := ToBytes(ctx, big.NewInt(-1))
	assert.NoError(t, err)
	assert.Equal(t, "ffffffffffffffffffffffffffffffff", hex.EncodeToString(b))

	b, err = ToBytes(ctx, Min())
	assert.NoError(t, err)
	assert.Equal(t, "80000000000000000000000000000000", hex.EncodeToString(b))

	b, err = ToBytes(ctx, big.NewInt(258))
	assert.NoError(t, err)
	assert.Equal(t, "00000000000000000000000000000102", hex.EncodeToString(b))

	v, err := FromBytes(ctx, b)
	assert.NoError(t, err)
	assert.Equal(t, "258", v.String())

	_, err = FromBytes(ctx, b[1:])
	assert.Regexp(t, "FF21103.*15", err)

	_, err = ToBytes(ctx, nil)
	assert.Regexp(t, "FF21101", err)
}

func TestHiLoWords(t *testing.T) {
	ctx := context.Background()
	hi, lo, err := (&HiLo{Hi: "0", Lo: "-1"}).Words(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)

	_, _, err = (&HiLo{Hi: "x", Lo: "0"}).Words(ctx)
	assert.Regexp(t, "FF21100", err)

	_, _, err = (&HiLo{Hi: "9223372036854775808", Lo: "0"}).Words(ctx)
	assert.Regexp(t, "FF21102", err)
}
