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

package testkit

import (
	"github.com/fxamacker/cbor/v2"
)

// The scripted machine's wire encoding for state values is deterministic
// CBOR. The engine treats these byte strings as opaque; only behaviors and
// tests decode them.

var encoder cbor.EncMode

func init() {
	var err error
	encoder, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// MarshalState encodes a state value to the machine's wire encoding.
func MarshalState(value any) ([]byte, error) {
	return encoder.Marshal(value)
}

// UnmarshalState decodes a state value from the machine's wire encoding.
func UnmarshalState(blob []byte, out any) error {
	return cbor.Unmarshal(blob, out)
}

// MustMarshalState encodes a state value and panics on failure. It is meant
// for tests and static fixtures.
func MustMarshalState(value any) []byte {
	blob, err := MarshalState(value)
	if err != nil {
		panic(err)
	}
	return blob
}
