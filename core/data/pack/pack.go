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

import "math"

// uintBytes returns the fewest bytes needed to hold v unsigned.
func uintBytes(v uint64) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	case v < 1<<32:
		return 4
	case v < 1<<40:
		return 5
	case v < 1<<48:
		return 6
	case v < 1<<56:
		return 7
	default:
		return 8
	}
}

// PackUint8 packs an unsigned, 8 bit integer value to the Buffer.
func (b *Buffer) PackUint8(v uint8) Nibble {
	b.putUint(uint64(v), 1)
	return 1
}

// PackUint16 packs an unsigned, 16 bit integer value to the Buffer in the
// fewest bytes that hold it, and returns the nibble code recording how many.
func (b *Buffer) PackUint16(v uint16) Nibble {
	n := uintBytes(uint64(v))
	b.putUint(uint64(v), n)
	return Nibble(n)
}

// PackUint32 packs an unsigned, 32 bit integer value to the Buffer in the
// fewest bytes that hold it, and returns the nibble code recording how many.
func (b *Buffer) PackUint32(v uint32) Nibble {
	n := uintBytes(uint64(v))
	b.putUint(uint64(v), n)
	return Nibble(n)
}

// PackUint64 packs an unsigned, 64 bit integer value to the Buffer in the
// fewest bytes that hold it, and returns the nibble code recording how many.
func (b *Buffer) PackUint64(v uint64) Nibble {
	n := uintBytes(v)
	b.putUint(v, n)
	return Nibble(n)
}

// PackInt8 packs a signed, 8 bit integer value to the Buffer. A single byte
// can never shrink, so the bit pattern is stored verbatim.
func (b *Buffer) PackInt8(v int8) Nibble {
	b.putUint(uint64(uint8(v)), 1)
	return 1
}

// PackInt16 packs a signed, 16 bit integer value to the Buffer. Negative
// values whose negation fits in fewer bytes are stored negated, with 8
// added to the returned nibble code.
func (b *Buffer) PackInt16(v int16) Nibble {
	if v >= 0 || v <= -(1<<8) {
		return b.PackUint16(uint16(v))
	}
	return 8 + b.PackUint16(uint16(-v))
}

// PackInt32 packs a signed, 32 bit integer value to the Buffer. Negative
// values whose negation fits in fewer bytes are stored negated, with 8
// added to the returned nibble code.
func (b *Buffer) PackInt32(v int32) Nibble {
	if v >= 0 || v <= -(1<<24) {
		return b.PackUint32(uint32(v))
	}
	return 8 + b.PackUint32(uint32(-v))
}

// PackInt64 packs a signed, 64 bit integer value to the Buffer. Negative
// values whose negation fits in fewer bytes are stored negated, with 8
// added to the returned nibble code.
func (b *Buffer) PackInt64(v int64) Nibble {
	if v >= 0 || v <= -(1<<56) {
		return b.PackUint64(uint64(v))
	}
	return 8 + b.PackUint64(uint64(-v))
}

// PackUintptr packs a pointer-sized address to the Buffer as a 64 bit
// unsigned integer. Addresses get no special nibble semantics.
func (b *Buffer) PackUintptr(v uintptr) Nibble {
	return b.PackUint64(uint64(v))
}

// PackFloat32 packs a 32 bit floating-point value to the Buffer verbatim.
// Floating-point values are never width-reduced.
func (b *Buffer) PackFloat32(v float32) Nibble {
	b.putUint(uint64(math.Float32bits(v)), 4)
	return 4
}

// PackFloat64 packs a 64 bit floating-point value to the Buffer verbatim.
// Floating-point values are never width-reduced.
func (b *Buffer) PackFloat64(v float64) Nibble {
	b.putUint(math.Float64bits(v), 8)
	return 8
}
