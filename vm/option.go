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
	"github.com/tochemey/goasync/hash"
	"github.com/tochemey/goasync/log"
)

// Option configures an AsyncVM at construction time.
type Option func(*AsyncVM)

// WithLogger sets the logger used by the engine. The default is
// log.DiscardLogger: the library stays quiet unless configured.
func WithLogger(logger log.Logger) Option {
	return func(vm *AsyncVM) {
		vm.logger = logger
	}
}

// WithHasher sets the hasher deriving message identifiers. All engines
// routing messages to one another must share the same hasher.
func WithHasher(hasher hash.Hasher) Option {
	return func(vm *AsyncVM) {
		vm.hasher = hasher
	}
}
