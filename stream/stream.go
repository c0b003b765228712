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

// Package stream provides typed reader and writer objects for MSB128
// encoded values over byte streams.
//
// Both types carry a sticky error: once any operation fails, every later
// operation is a no-op returning zero values, and Error returns the error
// that stopped the stream. This lets a sequence of reads or writes be issued
// without checking each one.
package stream

import (
	"io"

	"golang.org/x/exp/constraints"

	"github.com/0xB10C/msb128"
)

// Reader provides methods for decoding MSB128 values from a stream.
type Reader interface {
	// Data reads the data bytes in their entirety.
	Data([]byte)
	// Uint8 decodes and returns an unsigned, 8 bit integer value from the Reader.
	Uint8() uint8
	// Uint16 decodes and returns an unsigned, 16 bit integer value from the Reader.
	Uint16() uint16
	// Uint32 decodes and returns an unsigned, 32 bit integer value from the Reader.
	Uint32() uint32
	// Uint64 decodes and returns an unsigned, 64 bit integer value from the Reader.
	Uint64() uint64
	// Int8 decodes and returns a non-negative, signed, 8 bit integer value from the Reader.
	Int8() int8
	// Int16 decodes and returns a non-negative, signed, 16 bit integer value from the Reader.
	Int16() int16
	// Int32 decodes and returns a non-negative, signed, 32 bit integer value from the Reader.
	Int32() int32
	// Int64 decodes and returns a non-negative, signed, 64 bit integer value from the Reader.
	Int64() int64
	// If there is an error reading any input, all further reading returns the
	// zero value of the type read. Error() returns the error which stopped
	// reading from the stream. If reading has not stopped it returns nil.
	Error() error
	// Set the error state and stop reading from the stream.
	SetError(error)
}

// Writer provides methods for encoding MSB128 values to a stream.
type Writer interface {
	// Data writes the data bytes in their entirety.
	Data([]byte)
	// Uint8 encodes an unsigned, 8 bit integer value to the Writer.
	Uint8(uint8)
	// Uint16 encodes an unsigned, 16 bit integer value to the Writer.
	Uint16(uint16)
	// Uint32 encodes an unsigned, 32 bit integer value to the Writer.
	Uint32(uint32)
	// Uint64 encodes an unsigned, 64 bit integer value to the Writer.
	Uint64(uint64)
	// Int8 encodes a non-negative, signed, 8 bit integer value to the Writer.
	Int8(int8)
	// Int16 encodes a non-negative, signed, 16 bit integer value to the Writer.
	Int16(int16)
	// Int32 encodes a non-negative, signed, 32 bit integer value to the Writer.
	Int32(int32)
	// Int64 encodes a non-negative, signed, 64 bit integer value to the Writer.
	Int64(int64)
	// If there is an error writing any output, all further writing becomes
	// a no-op. Error() returns the error which stopped writing to the stream.
	// If writing has not stopped it returns nil.
	Error() error
	// Set the error state and stop writing to the stream.
	SetError(error)
}

// NewReader creates a Reader that decodes from the provided io.Reader.
func NewReader(r io.Reader) Reader {
	return &reader{reader: r}
}

// NewWriter creates a Writer that encodes to the supplied io.Writer.
func NewWriter(w io.Writer) Writer {
	return &writer{writer: w}
}

type reader struct {
	reader io.Reader
	err    error
}

type writer struct {
	writer io.Writer
	err    error
}

func read[T constraints.Integer](r *reader) T {
	if r.err != nil {
		return 0
	}
	v, err := msb128.Read[T](r.reader)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

func write[T constraints.Integer](w *writer, v T) {
	if w.err != nil {
		return
	}
	if _, err := msb128.Write(w.writer, v); err != nil {
		w.err = err
	}
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	_, r.err = io.ReadFull(r.reader, p)
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(data)
	if err != nil {
		w.err = err
		return
	}
	if n != len(data) {
		w.err = io.ErrShortWrite
	}
}

func (r *reader) Uint8() uint8    { return read[uint8](r) }
func (w *writer) Uint8(v uint8)   { write(w, v) }
func (r *reader) Uint16() uint16  { return read[uint16](r) }
func (w *writer) Uint16(v uint16) { write(w, v) }
func (r *reader) Uint32() uint32  { return read[uint32](r) }
func (w *writer) Uint32(v uint32) { write(w, v) }
func (r *reader) Uint64() uint64  { return read[uint64](r) }
func (w *writer) Uint64(v uint64) { write(w, v) }
func (r *reader) Int8() int8      { return read[int8](r) }
func (w *writer) Int8(v int8)     { write(w, v) }
func (r *reader) Int16() int16    { return read[int16](r) }
func (w *writer) Int16(v int16)   { write(w, v) }
func (r *reader) Int32() int32    { return read[int32](r) }
func (w *writer) Int32(v int32)   { write(w, v) }
func (r *reader) Int64() int64    { return read[int64](r) }
func (w *writer) Int64(v int64)   { write(w, v) }

func (r *reader) Error() error {
	return r.err
}

func (w *writer) Error() error {
	return w.err
}

func (r *reader) SetError(err error) {
	if r.err != nil {
		return
	}
	r.err = err
}

func (w *writer) SetError(err error) {
	if w.err != nil {
		return
	}
	w.err = err
}
