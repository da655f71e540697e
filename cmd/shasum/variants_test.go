// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/gosha2/cmd/shasum/variants_test.go

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LookupVariant_KnownNames(t *testing.T) {
	for _, name := range []string{"sha224", "sha256", "sha384", "sha512", "sha512256"} {
		v, err := lookupVariant(name)
		require.NoError(t, err)
		require.Equal(t, name, v.name)
	}
}

func Test_LookupVariant_UnknownNameErrors(t *testing.T) {
	_, err := lookupVariant("sha3-256")
	require.Error(t, err)
}

func Test_Variant_CheckpointResumeMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte{0xcd}, 150)

	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			oneShot := v.newHasher()
			_, _ = oneShot.Write(msg)
			want := oneShot.Sum()

			split := 37
			h := v.newHasher()
			_, _ = h.Write(msg[:split])
			cp := h.Checkpoint()
			require.Len(t, cp, v.checkpointBytes)

			resumed, err := v.fromCheckpoint(cp)
			require.NoError(t, err)
			_, _ = resumed.Write(msg[split:])

			require.Equal(t, want, resumed.Sum())
		})
	}
}
