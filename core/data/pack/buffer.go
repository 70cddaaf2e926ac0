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

// Buffer provides methods for packing values to and unpacking values from a
// slice of bytes. Values are written at WritePos and read at ReadPos; each
// operation advances its position by the number of bytes it touched. The
// write side grows Data as needed, the read side trusts the caller to stay
// within the bytes described by the nibble codes it holds.
type Buffer struct {
	Data     []byte // The byte slice holding the packed values
	ReadPos  int    // The current read offset from the start of Data
	WritePos int    // The current write offset from the start of Data
}

// grow ensures Data has room for n more bytes at WritePos.
func (b *Buffer) grow(n int) {
	if req := b.WritePos + n; req > len(b.Data) {
		if req <= cap(b.Data) {
			b.Data = b.Data[:req]
		} else {
			buf := make([]byte, req, req*2)
			copy(buf, b.Data)
			b.Data = buf
		}
	}
}

// putUint writes the low n bytes of v at WritePos, least significant byte
// first, and advances WritePos past them.
func (b *Buffer) putUint(v uint64, n int) {
	b.grow(n)
	for i := 0; i < n; i++ {
		b.Data[b.WritePos+i] = byte(v >> (8 * uint(i)))
	}
	b.WritePos += n
}

// getUint consumes n bytes at ReadPos and returns up to the first 8 of them
// accumulated least significant byte first, zero-extended.
func (b *Buffer) getUint(n int) uint64 {
	v := uint64(0)
	for i := 0; i < n && i < 8; i++ {
		v |= uint64(b.Data[b.ReadPos+i]) << (8 * uint(i))
	}
	b.ReadPos += n
	return v
}
