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

package msb128

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Maximum encoded length in bytes of an MSB128 integer of the given width.
const (
	MaxLen8  = 2
	MaxLen16 = 3
	MaxLen32 = 5
	MaxLen64 = 10
)

var (
	// ErrOverflow is returned when a decoded value does not fit the target
	// integer type.
	ErrOverflow = errors.New("msb128: encoded integer overflows the target type")

	// ErrNegative is returned when writing a negative integer. Only
	// non-negative values are encodable.
	ErrNegative = errors.New("msb128: cannot encode a negative integer")
)

// MaxLen returns the maximum encoded length in bytes of an integer of the
// given bit width.
func MaxLen(bits int) int {
	return (bits + 6) / 7
}

// Len returns the number of bytes Append would use to encode v.
func Len(v uint64) int {
	n := 1
	for v > 0x7f {
		v = (v >> 7) - 1
		n++
	}
	return n
}

// Append encodes v and appends the bytes to buf, returning the extended
// slice.
func Append(buf []byte, v uint64) []byte {
	var tmp [MaxLen64]byte
	o := len(tmp)
	cont := byte(0)
	for {
		o--
		tmp[o] = byte(v&0x7f) | cont
		if v <= 0x7f {
			break
		}
		// The final byte keeps its group as-is, every earlier group is
		// stored minus one.
		v = (v >> 7) - 1
		cont = 0x80
	}
	return append(buf, tmp[o:]...)
}

// Decode decodes a single value from the start of buf. It returns the value,
// the number of bytes consumed and any error. Decoding fails with
// ErrOverflow if the value does not fit a uint64 and with
// io.ErrUnexpectedEOF if buf ends before a byte with the continuation flag
// clear.
func Decode(buf []byte) (uint64, int, error) {
	var v uint64
	for n, b := range buf {
		if v > math.MaxUint64>>7 {
			return 0, n + 1, ErrOverflow
		}
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, n + 1, nil
		}
		// A continuation past the byte bound cannot fit regardless of the
		// bytes that follow.
		if n+1 == MaxLen64 || v == math.MaxUint64 {
			return 0, n + 1, ErrOverflow
		}
		v++
	}
	return 0, len(buf), io.ErrUnexpectedEOF
}

// Write encodes v to w and returns the number of bytes written. The encoding
// is issued as a single Write call; if w accepts fewer bytes without
// reporting an error, io.ErrShortWrite is returned. Negative values fail
// with ErrNegative before anything is written.
func Write[T constraints.Integer](w io.Writer, v T) (int, error) {
	if v < 0 {
		return 0, ErrNegative
	}
	var tmp [MaxLen64]byte
	buf := Append(tmp[:0], uint64(v))
	n, err := w.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Read decodes a single value from r into an integer of type T, reading one
// byte at a time. Errors from r are returned verbatim, except that an
// io.EOF after the first byte is reported as io.ErrUnexpectedEOF. Decoding
// fails with ErrOverflow if the value does not fit in T; no byte beyond T's
// byte bound is read.
func Read[T constraints.Integer](r io.Reader) (T, error) {
	br := byteReader(r)
	max := maxOf[T]()
	bound := MaxLen(bitsOf[T]())
	var v T
	for n := 0; ; n++ {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if v > max>>7 {
			return 0, ErrOverflow
		}
		v = v<<7 | T(b&0x7f)
		if b&0x80 == 0 {
			return v, nil
		}
		if n+1 == bound || v == max {
			return 0, ErrOverflow
		}
		v++
	}
}

// bitsOf returns the width of T in bits.
func bitsOf[T constraints.Integer]() int {
	n := 0
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Integer]() T {
	var zero T
	ones := ^zero
	if ones > zero {
		return ones
	}
	// Signed: all ones is -1, clear the sign bit.
	return ones ^ (T(1) << (bitsOf[T]() - 1))
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &singleReader{r: r}
}

// singleReader adapts an io.Reader into an io.ByteReader so that the
// decoder never consumes more than it needs.
type singleReader struct {
	r   io.Reader
	tmp [1]byte
}

func (s *singleReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.tmp[:]); err != nil {
		return 0, err
	}
	return s.tmp[0], nil
}
