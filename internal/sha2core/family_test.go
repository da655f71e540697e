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
// github.com:SymbolNotFound/gosha2/internal/sha2core/family_test.go

package sha2core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
	"github.com/SymbolNotFound/gosha2/internal/testsupport"
)

// Splitting an arbitrary message at any byte offset and feeding the two
// halves through separate Write calls must produce the same digest as one
// Write of the whole message, for every variant's Family and for many
// random message lengths and split points.
func Test_Property_SplitWriteInvariant(t *testing.T) {
	ring := testsupport.NewByteRing(20260729)

	cases := []struct {
		name string
		fam  *sha2core.Family[uint32]
		iv   [8]uint32
	}{
		{"sha224", sha2core.Family32, sha2core.IV224},
		{"sha256", sha2core.Family32, sha2core.IV256},
	}

	for _, c := range cases {
		for trial := 0; trial < 20; trial++ {
			msgLen := int(ring.Uint64()%300) + 1
			msg := ring.Next(msgLen)
			split := int(ring.Uint64() % uint64(msgLen+1))

			whole := sha2core.NewHasher(c.fam, c.iv)
			_, _ = whole.Write(msg)
			want := whole.Sum(c.fam.StateBytes())

			parts := sha2core.NewHasher(c.fam, c.iv)
			_, _ = parts.Write(msg[:split])
			_, _ = parts.Write(msg[split:])
			got := parts.Sum(c.fam.StateBytes())

			require.Equal(t, want, got, "%s trial %d: len=%d split=%d", c.name, trial, msgLen, split)
		}
	}
}

func Test_Property_SplitWriteInvariant64(t *testing.T) {
	ring := testsupport.NewByteRing(20260729, 64)

	cases := []struct {
		name string
		iv   [8]uint64
	}{
		{"sha384", sha2core.IV384},
		{"sha512", sha2core.IV512},
		{"sha512256", sha2core.IV512256},
	}

	for _, c := range cases {
		for trial := 0; trial < 20; trial++ {
			msgLen := int(ring.Uint64()%500) + 1
			msg := ring.Next(msgLen)
			split := int(ring.Uint64() % uint64(msgLen+1))

			whole := sha2core.NewHasher(sha2core.Family64, c.iv)
			_, _ = whole.Write(msg)
			want := whole.Sum(sha2core.Family64.StateBytes())

			parts := sha2core.NewHasher(sha2core.Family64, c.iv)
			_, _ = parts.Write(msg[:split])
			_, _ = parts.Write(msg[split:])
			got := parts.Sum(sha2core.Family64.StateBytes())

			require.Equal(t, want, got, "%s trial %d: len=%d split=%d", c.name, trial, msgLen, split)
		}
	}
}
