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

	"github.com/tochemey/goasync/address"
)

// ChangeSet describes the state effects of one session operation: resource
// creations and updates keyed by account address and struct tag. A change
// set is a description only; a scheduler outside this layer applies it to
// durable storage.
type ChangeSet struct {
	resources map[address.Address]map[StructTag][]byte
}

// NewChangeSet creates an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		resources: make(map[address.Address]map[StructTag][]byte),
	}
}

// PublishResource records the serialized value of the resource stored at the
// given address under the given tag. Publishing twice into the same slot is
// an error.
func (x *ChangeSet) PublishResource(addr address.Address, tag StructTag, blob []byte) error {
	slots, ok := x.resources[addr]
	if !ok {
		slots = make(map[StructTag][]byte)
		x.resources[addr] = slots
	}
	if _, ok := slots[tag]; ok {
		return fmt.Errorf("cannot publish resource %s at %s: already published", tag, addr)
	}
	slots[tag] = blob
	return nil
}

// Resource returns the serialized resource recorded at the given address
// under the given tag.
func (x *ChangeSet) Resource(addr address.Address, tag StructTag) ([]byte, bool) {
	blob, ok := x.resources[addr][tag]
	return blob, ok
}

// Range calls fn for every recorded resource until fn returns false.
// Iteration order is unspecified.
func (x *ChangeSet) Range(fn func(addr address.Address, tag StructTag, blob []byte) bool) {
	for addr, slots := range x.resources {
		for tag, blob := range slots {
			if !fn(addr, tag, blob) {
				return
			}
		}
	}
}

// Len returns the number of recorded resources.
func (x *ChangeSet) Len() int {
	total := 0
	for _, slots := range x.resources {
		total += len(slots)
	}
	return total
}

// IsEmpty reports whether the change set records no resource at all.
func (x *ChangeSet) IsEmpty() bool {
	return x.Len() == 0
}

// Event is an event emitted by the machine during execution, passed through
// unmodified to the caller.
type Event struct {
	// Key identifies the event stream the event belongs to.
	Key []byte
	// Sequence is the position of the event within its stream.
	Sequence uint64
	// Type tags the payload.
	Type StructTag
	// Data is the serialized payload.
	Data []byte
}

// Message is an outgoing message produced during execution: pure data,
// never executed inside this layer.
type Message struct {
	// To is the destination actor address.
	To address.Address
	// MessageHash is the identifier routing the message to its handler.
	MessageHash uint64
	// Args are the serialized argument byte strings.
	Args [][]byte
}

// String returns a compact rendering of the message.
func (m Message) String() string {
	return fmt.Sprintf("message{to=%s hash=%d args=%d}", m.To, m.MessageHash, len(m.Args))
}
