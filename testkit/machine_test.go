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

func TestMachine(t *testing.T) {
	libAddr := address.MustParse("0x1")
	actorAddr := address.MustParse("0xca11ab1e")
	module := vm.NewModuleID(libAddr, "counter")
	stateTag := vm.NewStructTag(module, "Counter")

	t.Run("Scripted execution charges gas and runs the behavior", func(t *testing.T) {
		machine := NewMachine(WithGasPerCall(3))
		machine.Bind(module, "init", func(call *Call) (*vm.SerializedReturnValues, error) {
			return &vm.SerializedReturnValues{ReturnValues: [][]byte{MustMarshalState(uint64(0))}}, nil
		})

		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		gas := NewGasTracker(10)
		returns, err := session.ExecuteFunction(module, "init", nil, nil, gas)
		require.NoError(t, err)
		require.Len(t, returns.ReturnValues, 1)
		require.EqualValues(t, 3, gas.Used())
	})

	t.Run("Unbound entry point", func(t *testing.T) {
		machine := NewMachine()
		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		_, err := session.ExecuteFunction(module, "missing", nil, nil, NewGasTracker(100))
		require.ErrorIs(t, err, ErrFunctionNotFound)
	})

	t.Run("Gas runs out before the behavior", func(t *testing.T) {
		invoked := false
		machine := NewMachine()
		machine.Bind(module, "init", func(call *Call) (*vm.SerializedReturnValues, error) {
			invoked = true
			return &vm.SerializedReturnValues{}, nil
		})
		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		_, err := session.ExecuteFunction(module, "init", nil, nil, NewGasTracker(DefaultGasPerCall-1))
		require.ErrorIs(t, err, ErrOutOfGas)
		require.False(t, invoked)
	})

	t.Run("Resource existence follows the resolver", func(t *testing.T) {
		machine := NewMachine()
		resolver := NewMemoryResolver()
		session := machine.NewSession(resolver, vm.NewAsyncExtension(actorAddr, 0))

		stateType, err := session.LoadType(stateTag)
		require.NoError(t, err)
		state, err := session.LoadResource(actorAddr, stateType)
		require.NoError(t, err)

		exists, err := state.Exists()
		require.NoError(t, err)
		require.False(t, exists)
		_, err = state.BorrowGlobal()
		require.ErrorIs(t, err, ErrResourceNotFound)

		resolver.SetResource(actorAddr, stateTag, MustMarshalState(uint64(1)))
		exists, err = state.Exists()
		require.NoError(t, err)
		require.True(t, exists)

		value, err := state.BorrowGlobal()
		require.NoError(t, err)
		blob, err := session.Serialize(value, stateTag)
		require.NoError(t, err)
		var decoded uint64
		require.NoError(t, UnmarshalState(blob, &decoded))
		require.EqualValues(t, 1, decoded)
	})

	t.Run("Serialize rejects foreign values", func(t *testing.T) {
		machine := NewMachine()
		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		_, err := session.Serialize("not a machine value", stateTag)
		require.ErrorIs(t, err, ErrSerialization)
	})

	t.Run("Events are drained by Finish", func(t *testing.T) {
		machine := NewMachine()
		machine.Bind(module, "emit", func(call *Call) (*vm.SerializedReturnValues, error) {
			call.EmitEvent(&vm.Event{Type: stateTag, Data: MustMarshalState("ping")})
			return &vm.SerializedReturnValues{}, nil
		})
		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		_, err := session.ExecuteFunction(module, "emit", nil, nil, NewGasTracker(100))
		require.NoError(t, err)

		_, events, err := session.Finish()
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, stateTag, events[0].Type)

		// A second finish has nothing left.
		_, events, err = session.Finish()
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("Behaviors reach registered natives", func(t *testing.T) {
		machine := NewMachine()
		require.NoError(t, machine.RegisterNatives(vm.Native{
			Address: libAddr,
			Module:  "clock",
			Name:    "now",
			Function: func(extension *vm.AsyncExtension, _ [][]byte) ([][]byte, error) {
				return [][]byte{MustMarshalState(extension.VirtualTime())}, nil
			},
		}))
		machine.Bind(module, "tick", func(call *Call) (*vm.SerializedReturnValues, error) {
			outputs, err := call.Native(libAddr, "clock", "now")
			if err != nil {
				return nil, err
			}
			return &vm.SerializedReturnValues{ReturnValues: outputs}, nil
		})

		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 42))
		returns, err := session.ExecuteFunction(module, "tick", nil, nil, NewGasTracker(100))
		require.NoError(t, err)
		require.Len(t, returns.ReturnValues, 1)
		var now uint64
		require.NoError(t, UnmarshalState(returns.ReturnValues[0], &now))
		require.EqualValues(t, 42, now)
	})

	t.Run("Unknown native", func(t *testing.T) {
		machine := NewMachine()
		machine.Bind(module, "tick", func(call *Call) (*vm.SerializedReturnValues, error) {
			_, err := call.Native(libAddr, "clock", "now")
			return nil, err
		})
		session := machine.NewSession(NewMemoryResolver(), vm.NewAsyncExtension(actorAddr, 0))
		_, err := session.ExecuteFunction(module, "tick", nil, nil, NewGasTracker(100))
		require.ErrorIs(t, err, ErrNativeNotFound)
	})

	t.Run("Duplicate native registration", func(t *testing.T) {
		machine := NewMachine()
		native := vm.Native{
			Address: libAddr,
			Module:  "clock",
			Name:    "now",
			Function: func(*vm.AsyncExtension, [][]byte) ([][]byte, error) {
				return nil, nil
			},
		}
		require.NoError(t, machine.RegisterNatives(native))
		require.ErrorIs(t, machine.RegisterNatives(native), ErrDuplicateNative)
	})
}
