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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tochemey/goasync/address"
	gerrors "github.com/tochemey/goasync/errors"
	"github.com/tochemey/goasync/hash"
	"github.com/tochemey/goasync/testkit"
	"github.com/tochemey/goasync/vm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// collidingHasher maps every input to the same identifier.
type collidingHasher struct{}

func (collidingHasher) HashCode([]byte) uint64 { return 42 }

func TestNew(t *testing.T) {
	libAddr := address.MustParse("0x1")
	counterModule := vm.NewModuleID(libAddr, "counter")
	counterTag := vm.NewStructTag(counterModule, "Counter")

	t.Run("Builds the catalog and dispatch table", func(t *testing.T) {
		counter, err := vm.NewActorMetadata(counterModule, counterTag, "init", "increment", "get")
		require.NoError(t, err)

		engine, err := vm.New(testkit.NewMachine(), libAddr, nil, []*vm.ActorMetadata{counter})
		require.NoError(t, err)

		require.Equal(t, []vm.ModuleID{counterModule}, engine.Actors())
		metadata, ok := engine.ActorMetadata(counterModule)
		require.True(t, ok)
		require.Equal(t, counter, metadata)

		module, handler, ok := engine.ResolveMessageHash(vm.MessageHash(hash.DefaultHasher(), counterModule, "increment"))
		require.True(t, ok)
		require.Equal(t, counterModule, module)
		require.Equal(t, "increment", handler)

		_, _, ok = engine.ResolveMessageHash(0)
		require.False(t, ok)
	})

	t.Run("Native registration failure aborts construction", func(t *testing.T) {
		machine := testkit.NewMachine()
		require.NoError(t, machine.RegisterNatives(vm.Native{
			Address: libAddr,
			Module:  "actor",
			Name:    "self",
			Function: func(*vm.AsyncExtension, [][]byte) ([][]byte, error) {
				return nil, nil
			},
		}))

		_, err := vm.New(machine, libAddr, nil, nil)
		require.ErrorIs(t, err, testkit.ErrDuplicateNative)
	})

	t.Run("Duplicate module identity keeps the last definition", func(t *testing.T) {
		first, err := vm.NewActorMetadata(counterModule, counterTag, "init", "ping")
		require.NoError(t, err)
		second, err := vm.NewActorMetadata(counterModule, counterTag, "setup", "pong")
		require.NoError(t, err)

		engine, err := vm.New(testkit.NewMachine(), libAddr, nil, []*vm.ActorMetadata{first, second})
		require.NoError(t, err)

		metadata, ok := engine.ActorMetadata(counterModule)
		require.True(t, ok)
		require.Equal(t, "setup", metadata.Initializer)

		_, _, ok = engine.ResolveMessageHash(vm.MessageHash(hash.DefaultHasher(), counterModule, "pong"))
		require.True(t, ok)
		_, _, ok = engine.ResolveMessageHash(vm.MessageHash(hash.DefaultHasher(), counterModule, "ping"))
		require.False(t, ok)
	})

	t.Run("Message hash collision is a construction error", func(t *testing.T) {
		accountModule := vm.NewModuleID(libAddr, "account")
		counter, err := vm.NewActorMetadata(counterModule, counterTag, "init", "increment")
		require.NoError(t, err)
		account, err := vm.NewActorMetadata(accountModule, vm.NewStructTag(accountModule, "Account"), "init", "deposit")
		require.NoError(t, err)

		_, err = vm.New(
			testkit.NewMachine(),
			libAddr,
			nil,
			[]*vm.ActorMetadata{counter, account},
			vm.WithHasher(collidingHasher{}),
		)
		require.ErrorIs(t, err, gerrors.ErrMessageHashCollision)
	})
}
