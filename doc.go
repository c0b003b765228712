// Copyright (C) 2026 The msb128 Authors.
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

// Package msb128 encodes and decodes non-negative integers using the Most
// Significant Base 128 (MSB128) variable-length encoding. MSB128 is a
// Variable Length Quantity (VLQ) encoding, the big-endian sibling of LEB128.
//
// A value is split into 7-bit groups, most-significant group first. Each
// group is stored in the low 7 bits of one byte; the high bit of the byte is
// the continuation flag, set on every byte except the last. One is
// subtracted from every group except the final (least-significant) one
// before it is stored, and added back during decoding. The subtraction
// removes the redundant encodings that plain VLQ has, so every integer has
// exactly one encoding and every terminated byte sequence decodes to a
// distinct integer.
//
// For example, the value 300 is encoded in two bytes:
//
//	value 300 = 0b10_0101100, 7-bit groups [2, 44]
//
//	byte 0: 1 000 0001  continuation set, group 2 stored as 2-1 = 1
//	byte 1: 0 010 1100  final byte, group 44 stored as-is
//
// A W-bit integer encodes to at most ceil(W/7) bytes: one byte for values
// up to 127, ten bytes for the full uint64 range.
//
// Decoding fails with ErrOverflow if the encoded value does not fit the
// target integer type, detected before the decoder reads past the target
// width's byte bound. A source that ends before the terminating byte yields
// io.ErrUnexpectedEOF, or io.EOF if it ends before the first byte.
//
// Negative values cannot be represented. Signed integer types are accepted
// by the generic functions, but writing a negative value fails with
// ErrNegative. Zig-zag or other signed transforms are left to the caller.
package msb128
