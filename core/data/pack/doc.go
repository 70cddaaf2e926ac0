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

// Package pack finds compact representations for primitive values.
//
// Integers are stored in the fewest bytes that preserve their value, least
// significant byte first. The number of bytes used, together with a flag
// recording whether a negative value was negated before storage, is folded
// into a 4-bit Nibble code returned by each Pack method. The code is not
// part of the value stream; the caller must persist it (two codes fit in
// one byte, see JoinPair) and hand it back to the matching Unpack method.
// Floating-point and pointer-sized values are stored verbatim at full
// width.
//
// Encode and decode must agree on the type of every value. A nibble code is
// only meaningful alongside the type it was produced for, and the package
// has no way to detect a mismatch.
//
// The Nibbler replays a contiguous stream laid out as the packed nibble
// codes followed by the packed value bytes, yielding values one at a time
// in their original order.
package pack
