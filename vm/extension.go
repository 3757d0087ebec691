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
)

// AsyncExtension is the per-invocation execution context injected into the
// machine session so that native functions invoked by actor code can observe
// and mutate it. It is created fresh for every session, never shared across
// sessions, and drained exactly once when the session operation completes.
type AsyncExtension struct {
	currentActor  address.Address
	virtualTime   uint64
	inInitializer bool
	sent          []Message
}

// NewAsyncExtension creates an execution context. Sessions create their own
// context; this constructor exists for machine implementations exercising
// their session plumbing directly.
func NewAsyncExtension(currentActor address.Address, virtualTime uint64) *AsyncExtension {
	return &AsyncExtension{
		currentActor: currentActor,
		virtualTime:  virtualTime,
	}
}

// CurrentActor returns the address of the actor being executed.
func (x *AsyncExtension) CurrentActor() address.Address {
	return x.currentActor
}

// VirtualTime returns the logical virtual time of this execution.
func (x *AsyncExtension) VirtualTime() uint64 {
	return x.virtualTime
}

// InInitializer reports whether the running entry point is the actor's
// initializer rather than a message handler.
func (x *AsyncExtension) InInitializer() bool {
	return x.inInitializer
}

// Send appends an outgoing message to the context buffer. Messages are
// captured, not delivered; the session drains them into the operation
// result in the order they were queued.
func (x *AsyncExtension) Send(to address.Address, messageHash uint64, args ...[]byte) {
	x.sent = append(x.sent, Message{
		To:          to,
		MessageHash: messageHash,
		Args:        args,
	})
}

// Sent returns the number of messages queued so far.
func (x *AsyncExtension) Sent() int {
	return len(x.sent)
}

// drain hands the queued messages over and empties the buffer.
func (x *AsyncExtension) drain() []Message {
	sent := x.sent
	x.sent = nil
	return sent
}
