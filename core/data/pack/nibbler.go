// Copyright (C) 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pack

import "github.com/pkg/errors"

// ErrExhausted is the sticky error reported by a Nibbler once every packed
// value in its stream has been consumed.
var ErrExhausted = errors.New("no packed values remain in the stream")

// Nibbler walks a stream of packed nibble codes followed by the packed
// values they describe, yielding the values one at a time in the order they
// were packed. The caller must request each value with the type it was
// packed as; the stream itself carries no type information.
//
// A Nibbler is forward-only and holds mutable cursor state, so an instance
// must not be shared between goroutines without external synchronization.
type Nibbler struct {
	buf       Buffer // ReadPos marks the next packed value
	nibblePos int    // Index of the current packed nibble byte
	onFirst   bool   // Whether the low half of the current byte is next
	remaining int    // Nibble codes not yet consumed
	end       int    // One past the last valid value byte
	err       error
}

// NewNibbler returns a Nibbler over data, which must hold numNibbles codes
// packed two per byte followed immediately by the packed values they
// describe.
func NewNibbler(data []byte, numNibbles int) *Nibbler {
	valueStart := (numNibbles + 1) / 2
	return &Nibbler{
		buf:       Buffer{Data: data, ReadPos: valueStart},
		onFirst:   true,
		remaining: numNibbles,
		end:       valueStart + SizeOfPackedRun(data, numNibbles),
	}
}

// next consumes and returns the active nibble code, reporting false once
// the stream is exhausted.
func (n *Nibbler) next() (Nibble, bool) {
	if n.err != nil {
		return 0, false
	}
	if n.remaining == 0 || n.buf.ReadPos >= n.end {
		n.err = ErrExhausted
		return 0, false
	}
	first, second := SplitPair(n.buf.Data[n.nibblePos])
	code := first
	if !n.onFirst {
		code = second
		n.nibblePos++
	}
	n.onFirst = !n.onFirst
	n.remaining--
	return code, true
}

// NextUint8 returns the next packed value as an unsigned, 8 bit integer.
func (n *Nibbler) NextUint8() uint8 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackUint8(c)
	}
	return 0
}

// NextUint16 returns the next packed value as an unsigned, 16 bit integer.
func (n *Nibbler) NextUint16() uint16 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackUint16(c)
	}
	return 0
}

// NextUint32 returns the next packed value as an unsigned, 32 bit integer.
func (n *Nibbler) NextUint32() uint32 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackUint32(c)
	}
	return 0
}

// NextUint64 returns the next packed value as an unsigned, 64 bit integer.
func (n *Nibbler) NextUint64() uint64 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackUint64(c)
	}
	return 0
}

// NextInt8 returns the next packed value as a signed, 8 bit integer.
func (n *Nibbler) NextInt8() int8 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackInt8(c)
	}
	return 0
}

// NextInt16 returns the next packed value as a signed, 16 bit integer.
func (n *Nibbler) NextInt16() int16 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackInt16(c)
	}
	return 0
}

// NextInt32 returns the next packed value as a signed, 32 bit integer.
func (n *Nibbler) NextInt32() int32 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackInt32(c)
	}
	return 0
}

// NextInt64 returns the next packed value as a signed, 64 bit integer.
func (n *Nibbler) NextInt64() int64 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackInt64(c)
	}
	return 0
}

// NextUintptr returns the next packed value as a pointer-sized address.
func (n *Nibbler) NextUintptr() uintptr {
	if c, ok := n.next(); ok {
		return n.buf.UnpackUintptr(c)
	}
	return 0
}

// NextFloat32 returns the next packed value as a 32 bit floating-point
// value.
func (n *Nibbler) NextFloat32() float32 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackFloat32(c)
	}
	return 0
}

// NextFloat64 returns the next packed value as a 64 bit floating-point
// value.
func (n *Nibbler) NextFloat64() float64 {
	if c, ok := n.next(); ok {
		return n.buf.UnpackFloat64(c)
	}
	return 0
}

// EndOfPackedValues returns the offset into the stream one past the last
// valid packed value byte.
func (n *Nibbler) EndOfPackedValues() int {
	return n.end
}

// Error returns the error which stopped the Nibbler, or nil if every Next
// call so far had a value to return.
func (n *Nibbler) Error() error {
	return n.err
}
