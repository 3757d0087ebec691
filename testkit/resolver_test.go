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

	"github.com/tochemey/goasync/address"
	"github.com/tochemey/goasync/vm"
)

func TestMemoryResolver(t *testing.T) {
	actorAddr := address.MustParse("0x42")
	module := vm.NewModuleID(address.MustParse("0x1"), "counter")
	stateTag := vm.NewStructTag(module, "Counter")

	t.Run("Empty slot", func(t *testing.T) {
		resolver := NewMemoryResolver()
		blob, err := resolver.GetResource(actorAddr, stateTag)
		require.NoError(t, err)
		require.Nil(t, blob)
	})
	t.Run("Set and get", func(t *testing.T) {
		resolver := NewMemoryResolver()
		resolver.SetResource(actorAddr, stateTag, MustMarshalState(uint64(7)))
		blob, err := resolver.GetResource(actorAddr, stateTag)
		require.NoError(t, err)
		var state uint64
		require.NoError(t, UnmarshalState(blob, &state))
		require.EqualValues(t, 7, state)
	})
	t.Run("Module lookup", func(t *testing.T) {
		resolver := NewMemoryResolver()
		_, err := resolver.GetModule(module)
		require.ErrorIs(t, err, ErrModuleNotFound)
		resolver.PutModule(module, []byte{0x1})
		blob, err := resolver.GetModule(module)
		require.NoError(t, err)
		require.Equal(t, []byte{0x1}, blob)
	})
	t.Run("Apply change set", func(t *testing.T) {
		resolver := NewMemoryResolver()
		changeSet := vm.NewChangeSet()
		require.NoError(t, changeSet.PublishResource(actorAddr, stateTag, MustMarshalState(uint64(3))))
		resolver.Apply(changeSet)
		blob, err := resolver.GetResource(actorAddr, stateTag)
		require.NoError(t, err)
		var state uint64
		require.NoError(t, UnmarshalState(blob, &state))
		require.EqualValues(t, 3, state)
	})
}
