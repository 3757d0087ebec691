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

// Package testkit provides an in-memory rendition of the machine interfaces
// of the async engine: a scripted Machine whose entry points are Go
// closures, a map-backed state resolver and a simple gas tracker. It backs
// the engine's own tests and lets embedders prototype actor code without a
// real bytecode machine.
package testkit

import (
	"github.com/tochemey/goasync/address"
	"github.com/tochemey/goasync/vm"
)

// DefaultGasPerCall is the flat gas cost the machine charges per entry-point
// invocation unless configured otherwise.
const DefaultGasPerCall uint64 = 10

type behaviorKey struct {
	module   vm.ModuleID
	function string
}

type nativeKey struct {
	address address.Address
	module  string
	name    string
}

// Behavior is the Go implementation of one scripted entry point.
type Behavior func(call *Call) (*vm.SerializedReturnValues, error)

// Machine is a scripted in-memory implementation of vm.Machine. Entry
// points are bound to Go closures with Bind; native functions registered
// through RegisterNatives are reachable from behaviors via Call.Native.
//
// Bind and RegisterNatives must happen before sessions are opened; a
// configured Machine is then safe for concurrent sessions against
// independent resolvers.
type Machine struct {
	gasPerCall uint64
	behaviors  map[behaviorKey]Behavior
	natives    map[nativeKey]vm.NativeFunction
}

// enforce compilation error
var _ vm.Machine = (*Machine)(nil)

// MachineOption configures a Machine at creation time.
type MachineOption func(*Machine)

// WithGasPerCall sets the flat gas cost charged per entry-point invocation.
func WithGasPerCall(cost uint64) MachineOption {
	return func(machine *Machine) {
		machine.gasPerCall = cost
	}
}

// NewMachine creates a scripted machine.
func NewMachine(opts ...MachineOption) *Machine {
	machine := &Machine{
		gasPerCall: DefaultGasPerCall,
		behaviors:  make(map[behaviorKey]Behavior),
		natives:    make(map[nativeKey]vm.NativeFunction),
	}
	for _, opt := range opts {
		opt(machine)
	}
	return machine
}

// Bind scripts the entry point (module, function) with the given behavior.
// Binding the same entry point again replaces the previous behavior.
func (x *Machine) Bind(module vm.ModuleID, function string, behavior Behavior) {
	x.behaviors[behaviorKey{module: module, function: function}] = behavior
}

// RegisterNatives implements vm.Machine. Registering the same native
// location twice is an error.
func (x *Machine) RegisterNatives(natives ...vm.Native) error {
	for _, native := range natives {
		key := nativeKey{address: native.Address, module: native.Module, name: native.Name}
		if _, ok := x.natives[key]; ok {
			return NewErrDuplicateNative(native.Address.String(), native.Module, native.Name)
		}
		x.natives[key] = native.Function
	}
	return nil
}

// NewSession implements vm.Machine.
func (x *Machine) NewSession(resolver vm.StateResolver, extension *vm.AsyncExtension) vm.MachineSession {
	return &machineSession{
		machine:   x,
		resolver:  resolver,
		extension: extension,
	}
}

// Call carries the inputs of one scripted entry-point invocation.
type Call struct {
	// Extension is the execution context of the running session.
	Extension *vm.AsyncExtension
	// Args are the serialized arguments of the call.
	Args [][]byte

	session *machineSession
}

// EmitEvent records an event into the running session.
func (c *Call) EmitEvent(event *vm.Event) {
	c.session.events = append(c.session.events, event)
}

// Native invokes a registered native function with the session's execution
// context.
func (c *Call) Native(addr address.Address, module, name string, args ...[]byte) ([][]byte, error) {
	native, ok := c.session.machine.natives[nativeKey{address: addr, module: module, name: name}]
	if !ok {
		return nil, NewErrNativeNotFound(addr.String(), module, name)
	}
	return native(c.Extension, args)
}

// machineSession implements vm.MachineSession against the scripted machine.
type machineSession struct {
	machine   *Machine
	resolver  vm.StateResolver
	extension *vm.AsyncExtension
	events    []*vm.Event
}

// enforce compilation error
var _ vm.MachineSession = (*machineSession)(nil)

// loadedType is the machine's type handle: the struct tag itself.
type loadedType struct {
	tag vm.StructTag
}

// resourceValue is the machine's runtime value: the stored wire bytes.
type resourceValue struct {
	bytes []byte
}

func (s *machineSession) LoadType(tag vm.StructTag) (vm.Type, error) {
	return loadedType{tag: tag}, nil
}

func (s *machineSession) LoadResource(addr address.Address, typ vm.Type) (vm.Resource, error) {
	loaded, ok := typ.(loadedType)
	if !ok {
		return nil, ErrUnknownType
	}
	return &resource{session: s, addr: addr, tag: loaded.tag}, nil
}

func (s *machineSession) Serialize(value vm.Value, tag vm.StructTag) ([]byte, error) {
	held, ok := value.(resourceValue)
	if !ok {
		return nil, NewErrSerialization(tag.String())
	}
	return held.bytes, nil
}

func (s *machineSession) ExecuteFunction(module vm.ModuleID, function string, _ []vm.StructTag, args [][]byte, gas vm.GasMeter) (*vm.SerializedReturnValues, error) {
	if err := gas.Deduct(s.machine.gasPerCall); err != nil {
		return nil, err
	}
	behavior, ok := s.machine.behaviors[behaviorKey{module: module, function: function}]
	if !ok {
		return nil, NewErrFunctionNotFound(module.String(), function)
	}
	return behavior(&Call{Extension: s.extension, Args: args, session: s})
}

func (s *machineSession) Finish() (*vm.ChangeSet, []*vm.Event, error) {
	events := s.events
	s.events = nil
	return vm.NewChangeSet(), events, nil
}

// resource implements vm.Resource over the session's resolver.
type resource struct {
	session *machineSession
	addr    address.Address
	tag     vm.StructTag
}

// enforce compilation error
var _ vm.Resource = (*resource)(nil)

func (r *resource) Exists() (bool, error) {
	blob, err := r.session.resolver.GetResource(r.addr, r.tag)
	if err != nil {
		return false, err
	}
	return blob != nil, nil
}

func (r *resource) BorrowGlobal() (vm.Value, error) {
	blob, err := r.session.resolver.GetResource(r.addr, r.tag)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, NewErrResourceNotFound(r.addr.String(), r.tag.String())
	}
	return resourceValue{bytes: blob}, nil
}
