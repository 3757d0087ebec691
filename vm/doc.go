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

// Package vm implements a deterministic actor-execution layer on top of an
// existing bytecode virtual machine.
//
// An AsyncVM owns the underlying machine together with a static actor
// catalog and a message dispatch table, both built once at construction time
// and immutable thereafter. From the AsyncVM, one-shot AsyncSession values
// are opened against a caller-supplied world-state view; each session
// performs exactly one state transition, either creating an actor
// (AsyncSession.NewActor) or handling a message (AsyncSession.HandleMessage),
// and yields either an AsyncSuccess carrying the state change set, emitted
// events, queued outgoing messages and gas consumed, or an AsyncError
// carrying the failure and the gas consumed up to it.
//
// The layer never delivers messages, never commits change sets and never
// interprets bytecode itself: the machine behind the Machine interface
// executes entry points, while a scheduler outside this package applies
// change sets to durable storage and routes the outgoing messages.
package vm
