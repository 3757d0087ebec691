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
	"github.com/tochemey/goasync/address"
)

// Machine abstracts the underlying bytecode virtual machine. Implementations
// interpret bytecode, meter gas and compute type layouts; this layer only
// orchestrates calls into them.
type Machine interface {
	// RegisterNatives installs native function implementations into the
	// machine. Registration happens once, at engine construction time.
	RegisterNatives(natives ...Native) error
	// NewSession begins an execution session against the given world-state
	// view, with the given execution context injected so that native
	// functions invoked by actor code can observe and mutate it.
	NewSession(resolver StateResolver, extension *AsyncExtension) MachineSession
}

// MachineSession is a single execution session of the underlying machine.
// A session is finished exactly once; Finish harvests the effects the
// machine collected during execution.
type MachineSession interface {
	// LoadType resolves a struct tag into a machine type handle.
	LoadType(tag StructTag) (Type, error)
	// LoadResource loads the resource slot stored at the given address for
	// the given type. The slot may be empty; see Resource.Exists.
	LoadResource(addr address.Address, typ Type) (Resource, error)
	// Serialize encodes a runtime value to the wire encoding implied by the
	// layout of the given type.
	Serialize(value Value, tag StructTag) ([]byte, error)
	// ExecuteFunction invokes an entry point bypassing visibility rules,
	// charging execution against the given gas meter. Arguments and return
	// values are serialized byte strings in the machine's value encoding.
	ExecuteFunction(module ModuleID, function string, typeArgs []StructTag, args [][]byte, gas GasMeter) (*SerializedReturnValues, error)
	// Finish tears the session down and returns the change set and events
	// collected by the machine during execution.
	Finish() (*ChangeSet, []*Event, error)
}

// StateResolver is the caller-supplied, mutable world-state view a session
// is bound to. It must not be shared across concurrently-running sessions.
type StateResolver interface {
	// GetResource returns the serialized resource stored at the address
	// under the given tag, or (nil, nil) when the slot is empty.
	GetResource(addr address.Address, tag StructTag) ([]byte, error)
	// GetModule returns the serialized module bytes for the given identity.
	GetModule(id ModuleID) ([]byte, error)
}

// Resource is a lazily inspected global resource slot.
type Resource interface {
	// Exists reports whether the slot holds a value.
	Exists() (bool, error)
	// BorrowGlobal returns the runtime value held by the slot. Borrowing an
	// empty slot is a machine-level error.
	BorrowGlobal() (Value, error)
}

// Type is an opaque handle to a machine-loaded type.
type Type any

// Value is an opaque runtime value owned by the underlying machine.
type Value any

// GasMeter bounds the execution of a single session operation. The machine
// deducts gas as it executes; this layer only reads the remaining balance to
// compute per-operation consumption.
type GasMeter interface {
	// Remaining returns the gas balance left on the meter.
	Remaining() uint64
	// Deduct charges the given amount against the meter. It returns an
	// error when the balance is insufficient; gas exhaustion surfaces as an
	// ordinary machine execution failure.
	Deduct(amount uint64) error
}

// SerializedReturnValues carries the outputs of a single entry-point
// invocation: the serialized return values and the serialized final values
// of the mutable reference parameters the call mutated.
type SerializedReturnValues struct {
	// MutableReferenceOutputs holds, per mutated reference parameter, its
	// argument index and final serialized value.
	MutableReferenceOutputs []MutableOutput
	// ReturnValues holds the serialized return values in declaration order.
	ReturnValues [][]byte
}

// MutableOutput is the final serialized value of one mutable reference
// parameter.
type MutableOutput struct {
	Index uint16
	Bytes []byte
}

// NativeFunction is a native function implementation invoked by the machine
// during execution. It receives the execution context of the running session
// and the serialized arguments of the call.
type NativeFunction func(extension *AsyncExtension, args [][]byte) ([][]byte, error)

// Native binds a native function implementation to the module location it is
// declared at.
type Native struct {
	Address  address.Address
	Module   string
	Name     string
	Function NativeFunction
}
