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
	"github.com/tochemey/goasync/address"
	"github.com/tochemey/goasync/vm"
)

// MemoryResolver is a map-backed world-state view. It is not synchronized:
// a resolver is borrowed exclusively by one session at a time, the same
// contract a durable store would have.
type MemoryResolver struct {
	resources map[address.Address]map[vm.StructTag][]byte
	modules   map[vm.ModuleID][]byte
}

// enforce compilation error
var _ vm.StateResolver = (*MemoryResolver)(nil)

// NewMemoryResolver creates an empty resolver.
func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{
		resources: make(map[address.Address]map[vm.StructTag][]byte),
		modules:   make(map[vm.ModuleID][]byte),
	}
}

// GetResource implements vm.StateResolver. An empty slot yields (nil, nil).
func (x *MemoryResolver) GetResource(addr address.Address, tag vm.StructTag) ([]byte, error) {
	return x.resources[addr][tag], nil
}

// GetModule implements vm.StateResolver.
func (x *MemoryResolver) GetModule(id vm.ModuleID) ([]byte, error) {
	blob, ok := x.modules[id]
	if !ok {
		return nil, NewErrModuleNotFound(id.String())
	}
	return blob, nil
}

// SetResource stores the serialized resource at the given slot.
func (x *MemoryResolver) SetResource(addr address.Address, tag vm.StructTag, blob []byte) {
	slots, ok := x.resources[addr]
	if !ok {
		slots = make(map[vm.StructTag][]byte)
		x.resources[addr] = slots
	}
	slots[tag] = blob
}

// PutModule stores the serialized module bytes.
func (x *MemoryResolver) PutModule(id vm.ModuleID, blob []byte) {
	x.modules[id] = blob
}

// Apply commits a change set into the resolver, the way a scheduler would
// commit it to durable storage.
func (x *MemoryResolver) Apply(changeSet *vm.ChangeSet) {
	changeSet.Range(func(addr address.Address, tag vm.StructTag, blob []byte) bool {
		x.SetResource(addr, tag, blob)
		return true
	})
}
