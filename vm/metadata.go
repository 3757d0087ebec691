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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tochemey/goasync/address"
	gerrors "github.com/tochemey/goasync/errors"
	"github.com/tochemey/goasync/hash"
	"github.com/tochemey/goasync/internal/validation"
)

const moduleSeparator = "::"

// ModuleID is the identity of a published module: the account address it is
// published under plus its name. ModuleID is comparable and used as the
// actor catalog key.
type ModuleID struct {
	Address address.Address
	Name    string
}

// NewModuleID creates a module identity.
func NewModuleID(addr address.Address, name string) ModuleID {
	return ModuleID{Address: addr, Name: name}
}

// String returns the canonical `address::name` rendering.
func (m ModuleID) String() string {
	return m.Address.String() + moduleSeparator + m.Name
}

// StructTag identifies a struct type declared in a module. It is comparable
// and keys resources in change sets and resolvers.
type StructTag struct {
	Module ModuleID
	Name   string
}

// NewStructTag creates a struct tag.
func NewStructTag(module ModuleID, name string) StructTag {
	return StructTag{Module: module, Name: name}
}

// String returns the canonical `address::module::name` rendering.
func (s StructTag) String() string {
	return s.Module.String() + moduleSeparator + s.Name
}

// ActorMetadata describes one registered actor type: the module implementing
// it, the struct tag of its persisted state, its initializer entry point and
// its message entry points. Metadata is immutable after construction and
// owned by the engine's catalog.
type ActorMetadata struct {
	// ModuleID is the identity of the module implementing the actor.
	ModuleID ModuleID
	// StateTag is the type of the actor's persisted state resource.
	StateTag StructTag
	// Initializer is the entry point creating the initial state.
	Initializer string
	// Messages are the message entry points, deduplicated, in declaration
	// order.
	Messages []string
}

// ensure ActorMetadata implements the validation.Validator interface
var _ validation.Validator = (*ActorMetadata)(nil)

// NewActorMetadata builds and validates the metadata of an actor type.
// Duplicate message names are dropped, keeping the first occurrence.
func NewActorMetadata(moduleID ModuleID, stateTag StructTag, initializer string, messages ...string) (*ActorMetadata, error) {
	seen := mapset.NewThreadUnsafeSet[string]()
	deduped := make([]string, 0, len(messages))
	for _, message := range messages {
		if seen.Add(message) {
			deduped = append(deduped, message)
		}
	}

	metadata := &ActorMetadata{
		ModuleID:    moduleID,
		StateTag:    stateTag,
		Initializer: initializer,
		Messages:    deduped,
	}
	if err := metadata.Validate(); err != nil {
		return nil, err
	}
	return metadata, nil
}

// Validate implements validation.Validator.
func (x *ActorMetadata) Validate() error {
	chain := validation.New(validation.FailFast()).
		AddValidator(validation.NewIdentifierValidator(x.ModuleID.Name, gerrors.NewErrInvalidIdentifier(x.ModuleID.Name))).
		AddValidator(validation.NewIdentifierValidator(x.StateTag.Name, gerrors.NewErrInvalidIdentifier(x.StateTag.Name))).
		AddValidator(validation.NewIdentifierValidator(x.Initializer, gerrors.NewErrInvalidIdentifier(x.Initializer)))
	for _, message := range x.Messages {
		chain.AddValidator(validation.NewIdentifierValidator(message, gerrors.NewErrInvalidIdentifier(message)))
	}
	return chain.Validate()
}

// MessageHash derives the fixed-width message identifier of a (module,
// message) pair. The identifier is the sole routing key at runtime; the
// engine never needs the textual message name to dispatch.
func MessageHash(hasher hash.Hasher, module ModuleID, message string) uint64 {
	return hasher.HashCode([]byte(module.String() + moduleSeparator + message))
}
