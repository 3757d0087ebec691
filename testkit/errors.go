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
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is the machine-level failure raised when borrowing
	// an empty resource slot.
	ErrResourceNotFound = errors.New("resource does not exist")

	// ErrFunctionNotFound is raised when executing an entry point that has
	// no scripted behavior.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrNativeNotFound is raised when a behavior invokes an unregistered
	// native function.
	ErrNativeNotFound = errors.New("native function not found")

	// ErrDuplicateNative is raised when registering a native at a location
	// that is already taken.
	ErrDuplicateNative = errors.New("native function already registered")

	// ErrOutOfGas is raised when the gas tracker balance cannot cover a
	// charge.
	ErrOutOfGas = errors.New("out of gas")

	// ErrUnknownType is raised when a type handle was not produced by this
	// machine.
	ErrUnknownType = errors.New("unknown type handle")

	// ErrModuleNotFound is raised when resolving a module absent from the
	// resolver.
	ErrModuleNotFound = errors.New("module not found")

	// ErrSerialization is raised when a value cannot be serialized by this
	// machine.
	ErrSerialization = errors.New("value serialization failed")
)

// NewErrResourceNotFound formats an ErrResourceNotFound with the slot
// coordinates.
func NewErrResourceNotFound(addr, tag string) error {
	return fmt.Errorf("address=(%s) type=(%s) %w", addr, tag, ErrResourceNotFound)
}

// NewErrFunctionNotFound formats an ErrFunctionNotFound with the entry
// point.
func NewErrFunctionNotFound(module, function string) error {
	return fmt.Errorf("function=(%s::%s) %w", module, function, ErrFunctionNotFound)
}

// NewErrNativeNotFound formats an ErrNativeNotFound with the native
// location.
func NewErrNativeNotFound(addr, module, name string) error {
	return fmt.Errorf("native=(%s::%s::%s) %w", addr, module, name, ErrNativeNotFound)
}

// NewErrDuplicateNative formats an ErrDuplicateNative with the native
// location.
func NewErrDuplicateNative(addr, module, name string) error {
	return fmt.Errorf("native=(%s::%s::%s) %w", addr, module, name, ErrDuplicateNative)
}

// NewErrOutOfGas formats an ErrOutOfGas with the attempted charge.
func NewErrOutOfGas(charge, remaining uint64) error {
	return fmt.Errorf("charge=(%d) remaining=(%d) %w", charge, remaining, ErrOutOfGas)
}

// NewErrModuleNotFound formats an ErrModuleNotFound with the module
// identity.
func NewErrModuleNotFound(moduleID string) error {
	return fmt.Errorf("module=(%s) %w", moduleID, ErrModuleNotFound)
}

// NewErrSerialization formats an ErrSerialization with the type tag.
func NewErrSerialization(tag string) error {
	return fmt.Errorf("type=(%s) %w", tag, ErrSerialization)
}
