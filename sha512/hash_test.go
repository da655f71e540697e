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
// github.com:SymbolNotFound/gosha2/sha512/hash_test.go

package sha512_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/sha512"
)

func Test_Hashing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"abc", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"two-block",
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.expected)
			if err != nil {
				t.Fatalf("bad fixture: %s", err)
			}
			digest, err := sha512.HashBytes([]byte(tt.input))
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
	digest, err := sha512.HashString("anything")
	require.NoError(t, err)
	require.Len(t, digest.Bytes(), sha512.DIGEST_BYTES)
}

func Test_StreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 20)
	oneShot, err := sha512.HashBytes(msg)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 127, 128, 129, 199, 200} {
		h := sha512.New()
		_, _ = h.Write(msg[:split])
		_, _ = h.Write(msg[split:])
		require.Equal(t, oneShot.Bytes(), h.Hash().Bytes(), "split at %d", split)
	}
}

func Test_CheckpointRoundTrip(t *testing.T) {
	msg := bytes.Repeat([]byte{0xab}, 200)
	want, err := sha512.HashBytes(msg)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 127, 128, 129, 199, 200} {
		h := sha512.New()
		_, _ = h.Write(msg[:split])
		cp := h.Checkpoint()

		resumed, err := sha512.NewFromCheckpoint(cp)
		require.NoError(t, err)
		_, _ = resumed.Write(msg[split:])

		require.Equal(t, want.Bytes(), resumed.Hash().Bytes(), "split at %d", split)
	}
}

func Test_CheckpointByteStability(t *testing.T) {
	h := sha512.New()
	_, _ = h.Write([]byte("partial block input"))
	cp := h.Checkpoint()

	resumed, err := sha512.NewFromCheckpoint(cp)
	require.NoError(t, err)
	cp2 := resumed.Checkpoint()

	require.Equal(t, cp.Raw(), cp2.Raw())
}
