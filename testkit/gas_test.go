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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGasTracker(t *testing.T) {
	t.Run("Deduct within limit", func(t *testing.T) {
		tracker := NewGasTracker(100)
		require.EqualValues(t, 100, tracker.Remaining())
		require.NoError(t, tracker.Deduct(30))
		require.EqualValues(t, 70, tracker.Remaining())
		require.EqualValues(t, 30, tracker.Used())
		require.EqualValues(t, 100, tracker.Limit())
	})
	t.Run("Exhaustion consumes the remainder", func(t *testing.T) {
		tracker := NewGasTracker(25)
		require.NoError(t, tracker.Deduct(20))
		err := tracker.Deduct(10)
		require.ErrorIs(t, err, ErrOutOfGas)
		require.EqualValues(t, 0, tracker.Remaining())
		require.EqualValues(t, 25, tracker.Used())
	})
	t.Run("Zero limit", func(t *testing.T) {
		tracker := NewGasTracker(0)
		require.ErrorIs(t, tracker.Deduct(1), ErrOutOfGas)
		require.EqualValues(t, 0, tracker.Remaining())
	})
}
