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

package vm

import (
	"fmt"
)

// AsyncSuccess is the outcome of a successful session operation. The caller
// is expected to apply the change set to durable storage and to decide how
// and when to deliver the messages.
type AsyncSuccess struct {
	// ChangeSet describes the state effects of the operation.
	ChangeSet *ChangeSet
	// Events are the events the machine collected during the call, passed
	// through unmodified.
	Events []*Event
	// Messages are the outgoing messages queued during execution, in the
	// order they were queued.
	Messages []Message
	// GasUsed is the gas consumed by the operation.
	GasUsed uint64
}

// String returns a compact rendering of the success.
func (s *AsyncSuccess) String() string {
	return fmt.Sprintf("change_set: %d resource(s), events: %d, messages: %d, gas: %d",
		s.ChangeSet.Len(), len(s.Events), len(s.Messages), s.GasUsed)
}

// AsyncError is the outcome of a failed session operation. Gas is still
// meaningful on failure: partial execution may have consumed gas before
// failing, and callers charge it through their own accounting.
type AsyncError struct {
	// Err is the underlying failure.
	Err error
	// GasUsed is the gas consumed up to the failure point. Routing and
	// precondition failures report zero.
	GasUsed uint64
}

// enforce compilation error
var _ error = (*AsyncError)(nil)

// Error implements the standard error interface
func (e *AsyncError) Error() string {
	return e.Err.Error()
}

func (e *AsyncError) Unwrap() error {
	return e.Err
}
