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

package pack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jodzga/NanoLog/core/data/pack"
)

func TestJoinSplitPair(t *testing.T) {
	for _, test := range []struct {
		first, second pack.Nibble
		packed        byte
	}{
		{0, 0, 0x00},
		{1, 2, 0x21}, // first in the low nibble
		{9, 0, 0x09},
		{0, 9, 0x90},
		{8, 15, 0xf8},
		{15, 15, 0xff},
	} {
		assert.Equal(t, test.packed, pack.JoinPair(test.first, test.second))
		first, second := pack.SplitPair(test.packed)
		assert.Equal(t, test.first, first)
		assert.Equal(t, test.second, second)
	}
}

func TestPackedBytes(t *testing.T) {
	for _, test := range []struct {
		code  pack.Nibble
		bytes int
	}{
		{0, 16}, // reserved wide encoding
		{1, 1},
		{4, 4},
		{8, 8},
		{9, 1}, // negated, one byte
		{12, 4},
		{15, 7},
	} {
		assert.Equal(t, test.bytes, test.code.PackedBytes(), "code %d", test.code)
	}
}

func TestNegated(t *testing.T) {
	assert.False(t, pack.Nibble(0).Negated())
	assert.False(t, pack.Nibble(8).Negated())
	assert.True(t, pack.Nibble(9).Negated())
	assert.True(t, pack.Nibble(15).Negated())
}

func TestSizeOfPackedRun(t *testing.T) {
	for _, test := range []struct {
		name    string
		nibbles []byte
		count   int
		size    int
	}{
		{"empty", nil, 0, 0},
		{"single", []byte{0x02}, 1, 2},
		{"single ignores high half", []byte{0xf2}, 1, 2},
		{"pair", []byte{0x92}, 2, 2 + 1}, // 2 bytes, then 1 negated byte
		{"wide", []byte{0x08}, 2, 8 + 16},
		{"odd run", []byte{0x92, 0x08, 0x03}, 5, 2 + 1 + 8 + 16 + 3},
	} {
		assert.Equal(t, test.size, pack.SizeOfPackedRun(test.nibbles, test.count), test.name)
	}
}

// TestSizeOfPackedRunMatchesPack checks the size calculator against the
// bytes actually written by a run of encodes.
func TestSizeOfPackedRunMatchesPack(t *testing.T) {
	b := pack.Buffer{}
	codes := []pack.Nibble{
		b.PackUint32(256),
		b.PackInt32(-5),
		b.PackFloat64(3.14),
		b.PackUint64(1 << 40),
		b.PackInt64(-(1 << 56)),
		b.PackUint8(0),
		b.PackFloat32(1.5),
	}
	nibbles := []byte{}
	for i := 0; i < len(codes); i += 2 {
		second := pack.Nibble(0)
		if i+1 < len(codes) {
			second = codes[i+1]
		}
		nibbles = append(nibbles, pack.JoinPair(codes[i], second))
	}
	assert.Equal(t, b.WritePos, pack.SizeOfPackedRun(nibbles, len(codes)))
}
