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
// github.com:SymbolNotFound/gosha2/sha256/hash_test.go

package sha256_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/sha256"
)

func Test_Hashing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"two-block", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.expected)
			if err != nil {
				t.Fatalf("bad fixture: %s", err)
			}
			digest, err := sha256.HashBytes([]byte(tt.input))
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
	digest, err := sha256.HashString("anything")
	require.NoError(t, err)
	require.Len(t, digest.Bytes(), sha256.DIGEST_BYTES)
}

func Test_StreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("0123456789"), 10) // 100 bytes, crosses the 64-byte block boundary
	oneShot, err := sha256.HashBytes(msg)
	require.NoError(t, err)

	for split := 0; split <= len(msg); split++ {
		h := sha256.New()
		_, _ = h.Write(msg[:split])
		_, _ = h.Write(msg[split:])
		require.Equal(t, oneShot.Bytes(), h.Hash().Bytes(), "split at %d", split)
	}
}

func Test_ResetEquivalence(t *testing.T) {
	h := sha256.New()
	_, _ = h.Write([]byte("garbage that should be discarded"))
	h.Reset()
	_, _ = h.Write([]byte("abc"))

	want, err := sha256.HashString("abc")
	require.NoError(t, err)
	require.Equal(t, want.Bytes(), h.Hash().Bytes())
}

func Test_CheckpointRoundTrip(t *testing.T) {
	msg := bytes.Repeat([]byte{0xab}, 100)
	want, err := sha256.HashBytes(msg)
	require.NoError(t, err)

	for _, split := range []int{0, 1, 63, 64, 65, 99, 100} {
		h := sha256.New()
		_, _ = h.Write(msg[:split])
		cp := h.Checkpoint()

		resumed, err := sha256.NewFromCheckpoint(cp)
		require.NoError(t, err)
		_, _ = resumed.Write(msg[split:])

		require.Equal(t, want.Bytes(), resumed.Hash().Bytes(), "split at %d", split)
	}
}

func Test_CheckpointByteStability(t *testing.T) {
	h := sha256.New()
	_, _ = h.Write([]byte("partial block input"))
	cp := h.Checkpoint()

	resumed, err := sha256.NewFromCheckpoint(cp)
	require.NoError(t, err)
	cp2 := resumed.Checkpoint()

	require.Equal(t, cp.Raw(), cp2.Raw())
}

func Test_InitialCheckpointMatchesIV(t *testing.T) {
	cp := sha256.New().Checkpoint()
	// SHA-256's IV, big-endian, per FIPS 180-4 section 5.3.3.
	want, err := hex.DecodeString("6a09e667bb67ae853c6ef372a54ff53a510e527f9b05688c1f83d9ab5be0cd19")
	require.NoError(t, err)
	require.Equal(t, want[:32], cp.Raw()[:32])
}
