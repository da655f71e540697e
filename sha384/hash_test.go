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
// github.com:SymbolNotFound/gosha2/sha384/hash_test.go

package sha384_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/sha384"
)

func Test_Hashing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
		{"abc", "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"two-block",
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"09330c33f71147e83d192fc782cd1b4753111b173b3b05d22fa08086e3b0f712fcc7c71a557e2db966c3e9fa91746039"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.expected)
			if err != nil {
				t.Fatalf("bad fixture: %s", err)
			}
			digest, err := sha384.HashBytes([]byte(tt.input))
			if err != nil {
				t.Errorf("error when attempting to hash input '%s':\n%s", tt.input, err)
			}
			if !bytes.Equal(digest.Bytes(), want) {
				t.Errorf("hashing of test '%s' resulted in unexpected hash\ngot:  %x\nwant: %x",
					tt.name, digest.Bytes(), want)
			}
		})
	}
}

func Test_DigestLength(t *testing.T) {
	digest, err := sha384.HashString("anything")
	require.NoError(t, err)
	require.Len(t, digest.Bytes(), sha384.DIGEST_BYTES)
}

func Test_StreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 20) // 200 bytes, crosses the 128-byte block boundary
	oneShot, err := sha384.HashBytes(msg)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 127, 128, 129, 199, 200} {
		h := sha384.New()
		_, _ = h.Write(msg[:split])
		_, _ = h.Write(msg[split:])
		require.Equal(t, oneShot.Bytes(), h.Hash().Bytes(), "split at %d", split)
	}
}

func Test_CheckpointRoundTrip(t *testing.T) {
	msg := bytes.Repeat([]byte{0xab}, 200)
	want, err := sha384.HashBytes(msg)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 127, 128, 129, 199, 200} {
		h := sha384.New()
		_, _ = h.Write(msg[:split])
		cp := h.Checkpoint()

		resumed, err := sha384.NewFromCheckpoint(cp)
		require.NoError(t, err)
		_, _ = resumed.Write(msg[split:])

		require.Equal(t, want.Bytes(), resumed.Hash().Bytes(), "split at %d", split)
	}
}

func Test_CheckpointByteStability(t *testing.T) {
	h := sha384.New()
	_, _ = h.Write([]byte("partial block input"))
	cp := h.Checkpoint()

	resumed, err := sha384.NewFromCheckpoint(cp)
	require.NoError(t, err)
	cp2 := resumed.Checkpoint()

	require.Equal(t, cp.Raw(), cp2.Raw())
}
