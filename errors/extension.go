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

package errors

import "fmt"

// ExtensionError marks a failure raised by the actor extension layer itself
// rather than by the underlying machine: routing and precondition failures,
// post-execution consistency failures and state serialization failures all
// carry this classification.
type ExtensionError struct {
	err error
}

// enforce compilation error
var _ error = (*ExtensionError)(nil)

// NewExtensionError wraps a base error into an ExtensionError.
func NewExtensionError(err error) *ExtensionError {
	return &ExtensionError{err: err}
}

// Error implements the standard error interface
func (e *ExtensionError) Error() string {
	return fmt.Sprintf("vm extension error: %v", e.err)
}

func (e *ExtensionError) Unwrap() error {
	return e.err
}
