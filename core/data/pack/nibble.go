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

// Nibble is a 4-bit code describing how a single value was packed:
//
//	0      the value occupies 16 bytes.
//	1 - 8  the value occupies that many bytes, stored unsigned.
//	9 - 15 the value was negative; its negation occupies code-8 bytes
//	       and the decoder must negate it again.
type Nibble uint8

// PackedBytes returns the number of value-stream bytes the code describes.
func (n Nibble) PackedBytes() int {
	switch {
	case n == 0:
		return 16
	case n > 8:
		return int(n) - 8
	default:
		return int(n)
	}
}

// Negated returns true if the encoder negated the value before storing it.
func (n Nibble) Negated() bool {
	return n > 8
}

// JoinPair packs two nibble codes into a single byte, first in the low four
// bits. This is the layout SplitPair, SizeOfPackedRun and the Nibbler expect.
func JoinPair(first, second Nibble) byte {
	return byte(first&0x0f) | byte(second&0x0f)<<4
}

// SplitPair is the inverse of JoinPair.
func SplitPair(b byte) (first, second Nibble) {
	return Nibble(b & 0x0f), Nibble(b >> 4)
}

// SizeOfPackedRun returns the total number of value-stream bytes described
// by count nibble codes packed two per byte at the start of nibbles. An odd
// final code occupies the low half of the last byte on its own.
func SizeOfPackedRun(nibbles []byte, count int) int {
	size := 0
	for i := 0; i < count/2; i++ {
		first, second := SplitPair(nibbles[i])
		size += first.PackedBytes() + second.PackedBytes()
	}
	if count&1 == 1 {
		first, _ := SplitPair(nibbles[count/2])
		size += first.PackedBytes()
	}
	return size
}
