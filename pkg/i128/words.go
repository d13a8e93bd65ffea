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
	"encoding/binary"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oraclemsgs"
)

// WireLength is the size of the binary 128-bit integer field
const WireLength = 16

var (
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64 = new(big.Int).SetUint64(^uint64(0))
)

// ToWords returns the two's complement machine words of the binary contract
// field: a signed high word and an unsigned low word.
func ToWords(ctx context.Context, value *big.Int) (hi int64, lo uint64, err error) {
	if value == nil {
		return 0, 0, i18n.NewError(ctx, oraclemsgs.MsgMissingI128Value)
	}
	if !InRange(value) {
		return 0, 0, i18n.NewError(ctx, oraclemsgs.MsgI128OutOfRange, value.String())
	}
	// Mod is Euclidean, so negative values wrap into [0, 2^128)
	u := new(big.Int).Mod(value, two128)
	lo = new(big.Int).And(u, mask64).Uint64()
	hi = int64(new(big.Int).Rsh(u, 64).Uint64())
	return hi, lo, nil
}

// FromWords is the inverse of ToWords
func FromWords(hi int64, lo uint64) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(hi), 64)
	return v.Add(v, new(big.Int).SetUint64(lo))
}

// ToBytes renders the field big-endian, high word first
func ToBytes(ctx context.Context, value *big.Int) ([]byte, error) {
	hi, lo, err := ToWords(ctx, value)
	if err != nil {
		return nil, err
	}
	b := make([]byte, WireLength)
	binary.BigEndian.PutUint64(b[0:8], uint64(hi))
	binary.BigEndian.PutUint64(b[8:16], lo)
	return b, nil
}

// FromBytes reads a 16 byte big-endian field, high word first
func FromBytes(ctx context.Context, b []byte) (*big.Int, error) {
	if len(b) != WireLength {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgInvalidI128WireLength, len(b))
	}
	hi := int64(binary.BigEndian.Uint64(b[0:8]))
	lo := binary.BigEndian.Uint64(b[8:16])
	return FromWords(hi, lo), nil
}

// Words converts the decimal pair to wire words
func (p *HiLo) Words(ctx context.Context) (hi int64, lo uint64, err error) {
	v, err := p.Value(ctx)
	if err != nil {
		return 0, 0, err
	}
	return ToWords(ctx, v)
}
