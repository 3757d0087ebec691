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
	"go.uber.org/atomic"

	"github.com/tochemey/goasync/vm"
)

// GasTracker is a vm.GasMeter over a fixed gas limit. When a charge exceeds
// the balance the tracker consumes whatever is left before failing, so that
// partial gas is still accounted for on exhaustion.
type GasTracker struct {
	limit uint64
	used  *atomic.Uint64
}

// enforce compilation error
var _ vm.GasMeter = (*GasTracker)(nil)

// NewGasTracker creates a tracker with the given gas limit.
func NewGasTracker(limit uint64) *GasTracker {
	return &GasTracker{
		limit: limit,
		used:  atomic.NewUint64(0),
	}
}

// Remaining implements vm.GasMeter.
func (x *GasTracker) Remaining() uint64 {
	used := x.used.Load()
	if used >= x.limit {
		return 0
	}
	return x.limit - used
}

// Deduct implements vm.GasMeter.
func (x *GasTracker) Deduct(amount uint64) error {
	remaining := x.Remaining()
	if amount > remaining {
		x.used.Add(remaining)
		return NewErrOutOfGas(amount, remaining)
	}
	x.used.Add(amount)
	return nil
}

// Used returns the gas consumed so far.
func (x *GasTracker) Used() uint64 {
	return x.used.Load()
}

// Limit returns the gas limit of the tracker.
func (x *GasTracker) Limit() uint64 {
	return x.limit
}
