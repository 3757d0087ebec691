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
)

// AsyncSession is a one-shot execution session bound to a world-state view.
// Exactly one of NewActor or HandleMessage may be called on a session; the
// operation consumes the session by finishing the underlying machine
// session, so a second operation is not a supported state. Sessions must
// not be shared across goroutines.
type AsyncSession struct {
	vm             *AsyncVM
	extension      *AsyncExtension
	machineSession MachineSession
}

// MachineSession returns the underlying machine session for out-of-core
// operations such as module publishing. Callers using it must not also run
// a session operation.
func (s *AsyncSession) MachineSession() MachineSession {
	return s.machineSession
}

// NewActor creates a new actor implemented by moduleID at actorAddr by
// invoking the actor's initializer. On success the initializer's returned
// value is recorded in the change set as the actor's state resource; the
// caller commits that change set to persist the new actor.
func (s *AsyncSession) NewActor(moduleID ModuleID, actorAddr address.Address, gas GasMeter) (*AsyncSuccess, *AsyncError) {
	actor, ok := s.vm.catalog[moduleID]
	if !ok {
		return nil, extensionFailure(gerrors.NewErrActorUnknown(moduleID.String()))
	}

	stateType, err := s.machineSession.LoadType(actor.StateTag)
	if err != nil {
		return nil, failure(err)
	}

	// The actor address must not already hold a state resource.
	state, err := s.machineSession.LoadResource(actorAddr, stateType)
	if err != nil {
		return nil, failure(err)
	}
	exists, err := state.Exists()
	if err != nil {
		return nil, failure(err)
	}
	if exists {
		return nil, extensionFailure(gerrors.NewErrActorAlreadyExists(moduleID.String(), actorAddr.String()))
	}

	// Execute the initializer.
	s.extension.inInitializer = true
	gasBefore := gas.Remaining()
	returns, execErr := s.machineSession.ExecuteFunction(actor.ModuleID, actor.Initializer, nil, nil, gas)
	changeSet, events, finishErr := s.machineSession.Finish()
	gasUsed := gasBefore - gas.Remaining()

	if execErr != nil {
		return nil, &AsyncError{Err: execErr, GasUsed: gasUsed}
	}
	if finishErr != nil {
		return nil, &AsyncError{Err: finishErr, GasUsed: gasUsed}
	}

	// The initializer must return exactly one value: the new state. That
	// value becomes the actor's state resource in the change set.
	if len(returns.ReturnValues) != 1 {
		return nil, &AsyncError{
			Err:     gerrors.NewExtensionError(gerrors.NewErrInconsistentInitializer(actor.Initializer)),
			GasUsed: gasUsed,
		}
	}
	if err := changeSet.PublishResource(actorAddr, actor.StateTag, returns.ReturnValues[0]); err != nil {
		return nil, &AsyncError{Err: gerrors.NewExtensionError(err), GasUsed: gasUsed}
	}

	return &AsyncSuccess{
		ChangeSet: changeSet,
		Events:    events,
		Messages:  s.extension.drain(),
		GasUsed:   gasUsed,
	}, nil
}

// HandleMessage handles the message identified by messageHash at actorAddr.
// The actor's current state is loaded, serialized and prepended as argument
// zero; the resolved handler is then invoked bypassing visibility rules,
// since handlers are not ordinary public entry points. When the handler
// mutates its state parameter, the mutated bytes are recorded in the change
// set as the actor's updated state resource.
func (s *AsyncSession) HandleMessage(actorAddr address.Address, messageHash uint64, args [][]byte, gas GasMeter) (*AsyncSuccess, *AsyncError) {
	moduleID, handler, ok := s.vm.ResolveMessageHash(messageHash)
	if !ok {
		return nil, extensionFailure(gerrors.NewErrUnknownMessageHash(messageHash))
	}
	actor, ok := s.vm.catalog[moduleID]
	if !ok {
		return nil, extensionFailure(gerrors.NewErrActorUnknown(moduleID.String()))
	}

	// Load the resource holding the actor state and prepend it to the
	// arguments. A missing state surfaces the machine's own error.
	stateType, err := s.machineSession.LoadType(actor.StateTag)
	if err != nil {
		return nil, failure(err)
	}
	state, err := s.machineSession.LoadResource(actorAddr, stateType)
	if err != nil {
		return nil, failure(err)
	}
	stateValue, err := state.BorrowGlobal()
	if err != nil {
		return nil, failure(err)
	}
	stateBytes, err := s.machineSession.Serialize(stateValue, actor.StateTag)
	if err != nil {
		return nil, extensionFailure(gerrors.NewErrSerializationFailure(err))
	}
	args = append([][]byte{stateBytes}, args...)

	// Execute the handler.
	s.extension.inInitializer = false
	gasBefore := gas.Remaining()
	returns, execErr := s.machineSession.ExecuteFunction(moduleID, handler, nil, args, gas)
	changeSet, events, finishErr := s.machineSession.Finish()
	gasUsed := gasBefore - gas.Remaining()

	if execErr != nil {
		return nil, &AsyncError{Err: execErr, GasUsed: gasUsed}
	}
	if finishErr != nil {
		return nil, &AsyncError{Err: finishErr, GasUsed: gasUsed}
	}

	// At most the state parameter may come back mutated. No mutation is
	// legal: the handler observed the state without updating it.
	if len(returns.MutableReferenceOutputs) > 1 {
		return nil, &AsyncError{
			Err:     gerrors.NewExtensionError(gerrors.NewErrInconsistentHandler(handler)),
			GasUsed: gasUsed,
		}
	}
	if len(returns.MutableReferenceOutputs) == 1 {
		mutated := returns.MutableReferenceOutputs[0]
		if err := changeSet.PublishResource(actorAddr, actor.StateTag, mutated.Bytes); err != nil {
			return nil, &AsyncError{Err: gerrors.NewExtensionError(err), GasUsed: gasUsed}
		}
	}

	return &AsyncSuccess{
		ChangeSet: changeSet,
		Events:    events,
		Messages:  s.extension.drain(),
		GasUsed:   gasUsed,
	}, nil
}

// failure wraps a pre-execution machine error: no gas has been spent yet.
func failure(err error) *AsyncError {
	return &AsyncError{Err: err, GasUsed: 0}
}

// extensionFailure wraps a routing, precondition or serialization error
// raised by this layer before any execution happened.
func extensionFailure(err error) *AsyncError {
	return failure(gerrors.NewExtensionError(err))
}
