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

package contractargs

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-oracle-sdk/internal/oraclemsgs"
	"github.com/hyperledger/firefly-oracle-sdk/pkg/i128"
)

// TypeI128 is the contract value type for signed 128-bit integers
const TypeI128 = "i128"

// TypedValue is the JSON form of a contract-call parameter or result, as
// passed through the connector in the method params
type TypedValue struct {
	Type  string           `json:"type"`
	Value *fftypes.JSONAny `json:"value"`
}

// half is one side of a hi/lo pair, given as a decimal string or a JSON number
type half string

func (h *half) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Anything other than a string is passed through, and rejected by the decimal parser if not a number
		s = string(b)
	}
	*h = half(s)
	return nil
}

type hiLo struct {
	Hi half `json:"hi"`
	Lo half `json:"lo"`
}

func (p *hiLo) value(ctx context.Context) (*big.Int, error) {
	return i128.Decode(ctx, string(p.Hi), string(p.Lo))
}

// i128Value accepts either the typed form, or a bare hi/lo object
type i128Value struct {
	Type  string          `json:"type,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	hiLo
}

func isJSONObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

// I128 builds the contract-call parameter for a price or fee
func I128(ctx context.Context, v *fftypes.FFBigInt) (*fftypes.JSONAny, error) {
	hl, err := i128.EncodeFFBigInt(ctx, v)
	if err != nil {
		return nil, err
	}
	b, _ := json.Marshal(hl)
	param := &TypedValue{
		Type:  TypeI128,
		Value: fftypes.JSONAnyPtrBytes(b),
	}
	b, _ = json.Marshal(param)
	log.L(ctx).Tracef("Encoded %s as i128 parameter %s", v.String(), b)
	return fftypes.JSONAnyPtrBytes(b), nil
}

// ParseI128 recovers a price or fee from a contract result
func ParseI128(ctx context.Context, v *fftypes.JSONAny) (*fftypes.FFBigInt, error) {
	if v.IsNil() {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgMissingI128Value)
	}
	var parsed i128Value
	if err := json.Unmarshal([]byte(*v), &parsed); err != nil {
		return nil, i18n.NewError(ctx, oraclemsgs.MsgInvalidContractValueJSON, err)
	}
	hl := &parsed.hiLo
	if parsed.Type != "" {
		if parsed.Type != TypeI128 {
			return nil, i18n.NewError(ctx, oraclemsgs.MsgUnexpectedContractValue, TypeI128, parsed.Type)
		}
		hl = nil
		if len(parsed.Value) > 0 {
			if !isJSONObject(parsed.Value) && string(bytes.TrimSpace(parsed.Value)) != "null" {
				return nil, i18n.NewError(ctx, oraclemsgs.MsgUnexpectedContractValue, TypeI128, string(parsed.Value))
			}
			if err := json.Unmarshal(parsed.Value, &hl); err != nil {
				return nil, i18n.NewError(ctx, oraclemsgs.MsgInvalidContractValueJSON, err)
			}
		}
		if hl == nil {
			return nil, i18n.NewError(ctx, oraclemsgs.MsgMissingI128Value)
		}
	}
	value, err := hl.value(ctx)
	if err != nil {
		return nil, err
	}
	return (*fftypes.FFBigInt)(value), nil
}

// Amount is a signed 128-bit contract value, that serializes as its hi/lo
// pair. It can be parsed from the pair, or from a plain integer.
type Amount fftypes.FFBigInt

// Price of an asset, as stored by the oracle
type Price = Amount

// Fee charged by the oracle contract
type Fee = Amount

// NewAmount copies v into a new Amount
func NewAmount(v *big.Int) *Amount {
	return (*Amount)(new(big.Int).Set(v))
}

// Int returns the amount as a big.Int, sharing its storage
func (a *Amount) Int() *big.Int {
	return (*big.Int)(a)
}

// MarshalJSON writes the hi/lo pair. The value receiver means amounts held by
// value in a struct serialize the same as pointers.
func (a Amount) MarshalJSON() ([]byte, error) {
	hl, err := i128.Encode(context.Background(), (*big.Int)(&a))
	if err != nil {
		return nil, err
	}
	return json.Marshal(hl)
}

// UnmarshalJSON reads a hi/lo object, or a plain integer as a number or string
func (a *Amount) UnmarshalJSON(b []byte) error {
	if !isJSONObject(b) {
		return (*fftypes.FFBigInt)(a).UnmarshalJSON(b)
	}
	var hl hiLo
	if err := json.Unmarshal(b, &hl); err != nil {
		return err
	}
	v, err := hl.value(context.Background())
	if err != nil {
		return err
	}
	a.Int().Set(v)
	return nil
}
