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
	gerrors "github.com/tochemey/goasync/errors"
	"github.com/tochemey/goasync/hash"
	"github.com/tochemey/goasync/log"
)

// dispatchEntry is one row of the message dispatch table.
type dispatchEntry struct {
	module  ModuleID
	handler string
}

// AsyncVM is an instance of the async actor engine: the underlying machine
// with the actor-runtime natives registered, the actor catalog and the
// message dispatch table. It is immutable after construction and safely
// shared by reference across concurrently-running sessions.
type AsyncVM struct {
	machine      Machine
	catalog      map[ModuleID]*ActorMetadata
	messageTable map[uint64]dispatchEntry
	logger       log.Logger
	hasher       hash.Hasher
}

// New creates a new engine, registering the built-in actor natives (declared
// under asyncLibAddr) together with the caller-supplied natives into the
// machine, and building the catalog and dispatch table from the given actor
// definitions.
//
// When a module identity appears more than once the last definition wins;
// the duplicate is logged as a warning. Construction fails when the machine
// rejects the native registration or when two distinct (module, message)
// pairs hash to the same message identifier.
func New(machine Machine, asyncLibAddr address.Address, natives []Native, actors []*ActorMetadata, opts ...Option) (*AsyncVM, error) {
	engine := &AsyncVM{
		machine:      machine,
		catalog:      make(map[ModuleID]*ActorMetadata, len(actors)),
		messageTable: make(map[uint64]dispatchEntry),
		logger:       log.DiscardLogger,
		hasher:       hash.DefaultHasher(),
	}
	for _, opt := range opts {
		opt(engine)
	}

	if err := machine.RegisterNatives(append(actorNatives(asyncLibAddr), natives...)...); err != nil {
		return nil, err
	}

	for _, actor := range actors {
		if _, ok := engine.catalog[actor.ModuleID]; ok {
			engine.logger.Warnf("actor module %s registered more than once: keeping the last definition", actor.ModuleID)
		}
		engine.catalog[actor.ModuleID] = actor
	}

	for moduleID, actor := range engine.catalog {
		for _, message := range actor.Messages {
			messageHash := MessageHash(engine.hasher, moduleID, message)
			if existing, ok := engine.messageTable[messageHash]; ok {
				return nil, gerrors.NewErrMessageHashCollision(
					messageHash,
					existing.module.String()+moduleSeparator+existing.handler,
					moduleID.String()+moduleSeparator+message,
				)
			}
			engine.messageTable[messageHash] = dispatchEntry{module: moduleID, handler: message}
		}
	}

	engine.logger.Debugf("async engine ready: %d actor(s), %d message route(s)", len(engine.catalog), len(engine.messageTable))
	return engine, nil
}

// NewSession creates a one-shot execution session bound to the given actor
// address, logical virtual time and world-state view. The session borrows
// the state view exclusively for its lifetime and supports exactly one
// operation.
func (x *AsyncVM) NewSession(forActor address.Address, virtualTime uint64, resolver StateResolver) *AsyncSession {
	extension := NewAsyncExtension(forActor, virtualTime)
	return &AsyncSession{
		vm:             x,
		extension:      extension,
		machineSession: x.machine.NewSession(resolver, extension),
	}
}

// Machine returns the underlying machine handle for out-of-core operations
// such as module publishing.
func (x *AsyncVM) Machine() Machine {
	return x.machine
}

// ResolveMessageHash resolves a message identifier into the owning module
// and handler entry-point name.
func (x *AsyncVM) ResolveMessageHash(messageHash uint64) (ModuleID, string, bool) {
	entry, ok := x.messageTable[messageHash]
	return entry.module, entry.handler, ok
}

// ActorMetadata returns the catalog entry of the given module identity.
func (x *AsyncVM) ActorMetadata(moduleID ModuleID) (*ActorMetadata, bool) {
	actor, ok := x.catalog[moduleID]
	return actor, ok
}

// Actors returns the module identities of all registered actors.
func (x *AsyncVM) Actors() []ModuleID {
	actors := make([]ModuleID, 0, len(x.catalog))
	for moduleID := range x.catalog {
		actors = append(actors, moduleID)
	}
	return actors
}
