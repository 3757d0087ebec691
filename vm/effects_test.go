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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tochemey/goasync/address"
)

func TestChangeSet(t *testing.T) {
	addrA := address.MustParse("0xa")
	addrB := address.MustParse("0xb")
	module := NewModuleID(address.MustParse("0x1"), "counter")
	tag := NewStructTag(module, "Counter")

	t.Run("Publish and read back", func(t *testing.T) {
		changeSet := NewChangeSet()
		require.True(t, changeSet.IsEmpty())
		require.NoError(t, changeSet.PublishResource(addrA, tag, []byte{0x1}))
		require.NoError(t, changeSet.PublishResource(addrB, tag, []byte{0x2}))
		require.Equal(t, 2, changeSet.Len())
		require.False(t, changeSet.IsEmpty())

		blob, ok := changeSet.Resource(addrA, tag)
		require.True(t, ok)
		require.Equal(t, []byte{0x1}, blob)
		_, ok = changeSet.Resource(addrA, NewStructTag(module, "Other"))
		require.False(t, ok)
	})

	t.Run("Double publish into the same slot", func(t *testing.T) {
		changeSet := NewChangeSet()
		require.NoError(t, changeSet.PublishResource(addrA, tag, []byte{0x1}))
		require.Error(t, changeSet.PublishResource(addrA, tag, []byte{0x2}))
	})

	t.Run("Range visits every resource", func(t *testing.T) {
		changeSet := NewChangeSet()
		require.NoError(t, changeSet.PublishResource(addrA, tag, []byte{0x1}))
		require.NoError(t, changeSet.PublishResource(addrB, tag, []byte{0x2}))

		visited := 0
		changeSet.Range(func(address.Address, StructTag, []byte) bool {
			visited++
			return true
		})
		require.Equal(t, 2, visited)

		visited = 0
		changeSet.Range(func(address.Address, StructTag, []byte) bool {
			visited++
			return false
		})
		require.Equal(t, 1, visited)
	})
}
