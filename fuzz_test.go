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

package msb128_test

import (
	"bytes"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/stretchr/testify/require"

	"github.com/0xB10C/msb128"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80})
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		v, err := c.GetUint64()
		if err != nil {
			t.Skip()
		}
		enc := msb128.Append(nil, v)
		require.LessOrEqual(t, len(enc), msb128.MaxLen64)
		require.Equal(t, len(enc), msb128.Len(v))

		got, n, err := msb128.Decode(enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(enc), n)

		got, err = msb128.Read[uint64](bytes.NewReader(enc))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x8e, 0xfe, 0xfe, 0xff, 0x00})
	f.Add([]byte{0x80, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0x7f})
	f.Add(bytes.Repeat([]byte{0xff}, 16))
	f.Fuzz(func(t *testing.T, data []byte) {
		v, n, err := msb128.Decode(data)
		require.LessOrEqual(t, n, msb128.MaxLen64)
		if err != nil {
			return
		}
		// A successful decode consumes a canonical prefix: re-encoding the
		// value must reproduce exactly the bytes consumed.
		require.Equal(t, data[:n], msb128.Append(nil, v))

		got, err := msb128.Read[uint64](bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})
}
