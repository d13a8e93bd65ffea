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

package oraclemsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgInvalidI128Decimal       = ffe("FF21100", "Invalid '%s' half of 128-bit integer: '%s' is not a base 10 integer", http.StatusBadRequest)
	MsgMissingI128Value         = ffe("FF21101", "A value is required for a 128-bit integer field", http.StatusBadRequest)
	MsgI128OutOfRange           = ffe("FF21102", "Value %s is outside the range of a signed 128-bit integer", http.StatusBadRequest)
	MsgInvalidI128WireLength    = ffe("FF21103", "A 128-bit integer field must be 16 bytes, received %d", http.StatusBadRequest)
	MsgUnexpectedContractValue  = ffe("FF21104", "Expected contract value of type '%s', received '%s'", http.StatusBadRequest)
	MsgInvalidContractValueJSON = ffe("FF21105", "Contract value could not be parsed as JSON: %s", http.StatusBadRequest)
	MsgInvalidOutputType        = ffe("FF21106", "Invalid output type: %s")
	MsgInvalidI128WireHex       = ffe("FF21107", "Invalid hex for 128-bit integer field '%s': %s", http.StatusBadRequest)
)
