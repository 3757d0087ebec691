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

// Package errors defines the error taxonomy of the async actor layer.
//
// Routing and precondition failures are detected before any machine call and
// are reported with zero gas. Postcondition failures are detected after a
// successful machine call and carry the gas the call consumed. Machine
// execution errors are propagated verbatim by the session layer.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrActorUnknown is returned when a module identity is not present in
	// the actor catalog.
	ErrActorUnknown = errors.New("actor unknown")

	// ErrActorAlreadyExists is returned when creating an actor at an address
	// that already holds a state resource of the actor's declared type.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrUnknownMessageHash is returned when a message identifier cannot be
	// resolved through the dispatch table.
	ErrUnknownMessageHash = errors.New("unknown message hash")

	// ErrInconsistentInitializer is returned when an initializer does not
	// return exactly one value, the new actor state.
	ErrInconsistentInitializer = errors.New("inconsistent initializer")

	// ErrInconsistentHandler is returned when a message handler mutates more
	// than one reference parameter.
	ErrInconsistentHandler = errors.New("inconsistent handler")

	// ErrMessageHashCollision is returned at construction time when two
	// distinct (module, message) pairs hash to the same message identifier.
	ErrMessageHashCollision = errors.New("message hash collision")

	// ErrSerializationFailure is returned when a state value cannot be
	// encoded to the wire encoding implied by its type layout.
	ErrSerializationFailure = errors.New("serialization failed")

	// ErrInvalidIdentifier is returned when a module, function or message
	// name is not a valid identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidNativeArguments is returned when a built-in native function
	// receives a malformed argument list.
	ErrInvalidNativeArguments = errors.New("invalid native arguments")
)

// NewErrActorUnknown formats an ErrActorUnknown with the module identity.
func NewErrActorUnknown(moduleID string) error {
	return fmt.Errorf("actor=(%s) %w", moduleID, ErrActorUnknown)
}

// NewErrActorAlreadyExists formats an ErrActorAlreadyExists with the module
// identity and the account address.
func NewErrActorAlreadyExists(moduleID, actorAddr string) error {
	return fmt.Errorf("actor=(%s) address=(%s) %w", moduleID, actorAddr, ErrActorAlreadyExists)
}

// NewErrUnknownMessageHash formats an ErrUnknownMessageHash with the
// unresolved message identifier.
func NewErrUnknownMessageHash(messageHash uint64) error {
	return fmt.Errorf("hash=(%d) %w", messageHash, ErrUnknownMessageHash)
}

// NewErrInconsistentInitializer formats an ErrInconsistentInitializer with
// the initializer entry-point name.
func NewErrInconsistentInitializer(initializer string) error {
	return fmt.Errorf("initializer=(%s) %w", initializer, ErrInconsistentInitializer)
}

// NewErrInconsistentHandler formats an ErrInconsistentHandler with the
// handler entry-point name.
func NewErrInconsistentHandler(handler string) error {
	return fmt.Errorf("handler=(%s) %w", handler, ErrInconsistentHandler)
}

// NewErrMessageHashCollision formats an ErrMessageHashCollision with both
// colliding entry points and the shared identifier.
func NewErrMessageHashCollision(hash uint64, first, second string) error {
	return fmt.Errorf("hash=(%d) between (%s) and (%s): %w", hash, first, second, ErrMessageHashCollision)
}

// NewErrSerializationFailure wraps a base error with ErrSerializationFailure.
func NewErrSerializationFailure(err error) error {
	return errors.Join(ErrSerializationFailure, err)
}

// NewErrInvalidIdentifier formats an ErrInvalidIdentifier with the offending
// name.
func NewErrInvalidIdentifier(name string) error {
	return fmt.Errorf("name=(%s) %w", name, ErrInvalidIdentifier)
}
