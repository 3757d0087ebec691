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
	"encoding/binary"
	"fmt"

	"github.com/tochemey/goasync/address"
	gerrors "github.com/tochemey/goasync/errors"
)

const (
	actorModuleName   = "actor"
	runtimeModuleName = "runtime"
)

// actorNatives returns the built-in native functions of the actor runtime,
// declared under the given library address. They are registered into the
// machine at engine construction time alongside the caller-supplied natives
// and only ever touch the execution context of the running session.
func actorNatives(libAddr address.Address) []Native {
	return []Native{
		{Address: libAddr, Module: actorModuleName, Name: "self", Function: nativeSelf},
		{Address: libAddr, Module: actorModuleName, Name: "virtual_time", Function: nativeVirtualTime},
		{Address: libAddr, Module: actorModuleName, Name: "in_initializer", Function: nativeInInitializer},
		{Address: libAddr, Module: runtimeModuleName, Name: "send", Function: nativeSend},
	}
}

// nativeSelf returns the raw address of the actor being executed.
func nativeSelf(extension *AsyncExtension, _ [][]byte) ([][]byte, error) {
	return [][]byte{extension.CurrentActor().Bytes()}, nil
}

// nativeVirtualTime returns the logical virtual time as a little-endian u64.
func nativeVirtualTime(extension *AsyncExtension, _ [][]byte) ([][]byte, error) {
	encoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(encoded, extension.VirtualTime())
	return [][]byte{encoded}, nil
}

// nativeInInitializer returns a single boolean byte reporting whether the
// running entry point is the initializer.
func nativeInInitializer(extension *AsyncExtension, _ [][]byte) ([][]byte, error) {
	flag := byte(0)
	if extension.InInitializer() {
		flag = 1
	}
	return [][]byte{{flag}}, nil
}

// nativeSend queues an outgoing message. Expected arguments: the raw
// destination address, the message identifier as a little-endian u64, then
// the message arguments forwarded verbatim.
func nativeSend(extension *AsyncExtension, args [][]byte) ([][]byte, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("send expects destination and message hash: %w", gerrors.ErrInvalidNativeArguments)
	}
	destination, err := address.FromBytes(args[0])
	if err != nil {
		return nil, fmt.Errorf("send destination: %w", gerrors.ErrInvalidNativeArguments)
	}
	if len(args[1]) != 8 {
		return nil, fmt.Errorf("send message hash must be 8 bytes: %w", gerrors.ErrInvalidNativeArguments)
	}
	messageHash := binary.LittleEndian.Uint64(args[1])
	extension.Send(destination, messageHash, args[2:]...)
	return nil, nil
}
