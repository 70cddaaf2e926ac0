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

// unpack consumes the bytes described by n and returns the accumulated
// integer, negated again if the encoder negated it. Conversion to the
// caller's narrower type truncates, which restores the original bit
// pattern for values that were stored through the unsigned path.
func (b *Buffer) unpack(n Nibble) uint64 {
	v := b.getUint(n.PackedBytes())
	if n.Negated() {
		return -v
	}
	return v
}

// UnpackUint8 unpacks an unsigned, 8 bit integer value from the Buffer.
func (b *Buffer) UnpackUint8(n Nibble) uint8 {
	return uint8(b.unpack(n))
}

// UnpackUint16 unpacks an unsigned, 16 bit integer value from the Buffer.
func (b *Buffer) UnpackUint16(n Nibble) uint16 {
	return uint16(b.unpack(n))
}

// UnpackUint32 unpacks an unsigned, 32 bit integer value from the Buffer.
func (b *Buffer) UnpackUint32(n Nibble) uint32 {
	return uint32(b.unpack(n))
}

// UnpackUint64 unpacks an unsigned, 64 bit integer value from the Buffer.
func (b *Buffer) UnpackUint64(n Nibble) uint64 {
	return b.unpack(n)
}

// UnpackInt8 unpacks a signed, 8 bit integer value from the Buffer.
func (b *Buffer) UnpackInt8(n Nibble) int8 {
	return int8(b.unpack(n))
}

// UnpackInt16 unpacks a signed, 16 bit integer value from the Buffer.
func (b *Buffer) UnpackInt16(n Nibble) int16 {
	return int16(b.unpack(n))
}

// UnpackInt32 unpacks a signed, 32 bit integer value from the Buffer.
func (b *Buffer) UnpackInt32(n Nibble) int32 {
	return int32(b.unpack(n))
}

// UnpackInt64 unpacks a signed, 64 bit integer value from the Buffer.
func (b *Buffer) UnpackInt64(n Nibble) int64 {
	return int64(b.unpack(n))
}

// UnpackUintptr unpacks a pointer-sized address from the Buffer.
func (b *Buffer) UnpackUintptr(n Nibble) uintptr {
	return uintptr(b.unpack(n))
}

// UnpackFloat32 unpacks a 32 bit floating-point value from the Buffer.
// Floats are stored verbatim, so exactly four bytes are consumed.
func (b *Buffer) UnpackFloat32(n Nibble) float32 {
	return math.Float32frombits(uint32(b.getUint(4)))
}

// UnpackFloat64 unpacks a 64 bit floating-point value from the Buffer.
// Doubles are stored verbatim; a code of 0 consumes 16 bytes with the
// value taken from the first 8.
func (b *Buffer) UnpackFloat64(n Nibble) float64 {
	return math.Float64frombits(b.getUint(n.PackedBytes()))
}
