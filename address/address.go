/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package address provides the canonical representation of account addresses
// used to locate actors and their persisted state.
//
// An Address is a fixed-width binary account identifier. Its canonical textual
// representation is a 0x-prefixed lowercase hexadecimal string. Short forms
// (fewer than 2*Length hex digits) are accepted on input and are left-padded
// with zeros, so `0x7` and `0x00000000000000000000000000000007` denote the
// same account.
//
// Address is a value type: it is immutable, comparable with == and safe to
// use as a map key and to share across goroutines.
package address

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Length is the number of raw bytes of an account address.
const Length = 16

// Address is a fixed-width account address.
type Address [Length]byte

// Zero is the all-zero account address.
var Zero Address

// FromHex parses an address from its hexadecimal representation.
// The leading `0x` prefix is optional and short forms are left-padded
// with zeros.
func FromHex(text string) (Address, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(text), "0x")
	if trimmed == "" || len(trimmed) > 2*Length {
		return Zero, NewErrInvalidAddress(text)
	}
	if len(trimmed)%2 != 0 {
		trimmed = "0" + trimmed
	}
	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return Zero, NewErrInvalidAddress(text)
	}
	return FromBytes(decoded)
}

// FromBytes builds an address from raw bytes. Inputs shorter than Length are
// left-padded with zeros; longer inputs are rejected.
func FromBytes(raw []byte) (Address, error) {
	if len(raw) > Length {
		return Zero, NewErrInvalidAddress(fmt.Sprintf("%x", raw))
	}
	var addr Address
	copy(addr[Length-len(raw):], raw)
	return addr, nil
}

// MustParse parses an address from its hexadecimal representation and panics
// when the input is malformed. It is meant for tests and static fixtures.
func MustParse(text string) Address {
	addr, err := FromHex(text)
	if err != nil {
		panic(err)
	}
	return addr
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, Length)
	copy(out, a[:])
	return out
}

// Hex returns the full-width hexadecimal form without the 0x prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// String returns the canonical short form: 0x-prefixed, leading zeros
// trimmed. The zero address renders as `0x0`.
func (a Address) String() string {
	trimmed := strings.TrimLeft(a.Hex(), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return "0x" + trimmed
}

// IsZero reports whether the address is the all-zero address.
func (a Address) IsZero() bool {
	return a == Zero
}
