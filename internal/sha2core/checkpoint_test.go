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
// github.com:SymbolNotFound/gosha2/internal/sha2core/checkpoint_test.go

package sha2core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
)

func Test_Checkpoint_RoundTrip_AllSplits(t *testing.T) {
	msg := bytes.Repeat([]byte{0xab}, 100)

	oneShot := sha2core.NewHasher(sha2core.Family32, sha2core.IV256)
	_, _ = oneShot.Write(msg)
	want := oneShot.Sum(32)

	for _, split := range []int{0, 1, 63, 64, 65, 99, 100} {
		h := sha2core.NewHasher(sha2core.Family32, sha2core.IV256)
		_, _ = h.Write(msg[:split])

		buf := make([]byte, sha2core.SerialBytes(sha2core.Family32))
		sha2core.Serialize(h, buf)

		resumed, err := sha2core.Deserialize(sha2core.Family32, sha2core.IV256, buf)
		require.NoError(t, err)
		_, _ = resumed.Write(msg[split:])

		require.Equal(t, want, resumed.Sum(32), "split at %d", split)
	}
}

func Test_Checkpoint_IsByteStable(t *testing.T) {
	h := sha2core.NewHasher(sha2core.Family32, sha2core.IV256)
	_, _ = h.Write([]byte("a partial block that does not fill 64 bytes"))

	buf := make([]byte, sha2core.SerialBytes(sha2core.Family32))
	sha2core.Serialize(h, buf)

	resumed, err := sha2core.Deserialize(sha2core.Family32, sha2core.IV256, buf)
	require.NoError(t, err)

	buf2 := make([]byte, sha2core.SerialBytes(sha2core.Family32))
	sha2core.Serialize(resumed, buf2)

	require.Equal(t, buf, buf2)
}

func Test_Checkpoint_InvalidBufferLenIsRejected(t *testing.T) {
	size := sha2core.SerialBytes(sha2core.Family32)
	buf := make([]byte, size)

	stateBytes := 8 * 4
	buf[stateBytes+sha2core.Family32.BlockBytes] = byte(sha2core.Family32.BlockBytes) // == BlockBytes, out of range

	_, err := sha2core.Deserialize(sha2core.Family32, sha2core.IV256, buf)
	require.Error(t, err)
	require.True(t, sha2core.IsInvalidCheckpoint(err))
}

func Test_Checkpoint_MaxValidBufferLenIsAccepted(t *testing.T) {
	size := sha2core.SerialBytes(sha2core.Family32)
	buf := make([]byte, size)

	stateBytes := 8 * 4
	buf[stateBytes+sha2core.Family32.BlockBytes] = byte(sha2core.Family32.BlockBytes - 1) // max valid value

	_, err := sha2core.Deserialize(sha2core.Family32, sha2core.IV256, buf)
	require.NoError(t, err)
}

func Test_Checkpoint_InitialStateMatchesIV(t *testing.T) {
	h := sha2core.NewHasher(sha2core.Family32, sha2core.IV224)
	buf := make([]byte, sha2core.SerialBytes(sha2core.Family32))
	sha2core.Serialize(h, buf)

	for i, want := range sha2core.IV224 {
		got := uint32(buf[i*4])<<24 | uint32(buf[i*4+1])<<16 | uint32(buf[i*4+2])<<8 | uint32(buf[i*4+3])
		require.Equal(t, want, got, "word %d", i)
	}
}

func Test_Checkpoint_SerialBytes_MatchesFamilyLayout(t *testing.T) {
	require.Equal(t, 105, sha2core.SerialBytes(sha2core.Family32))
	require.Equal(t, 209, sha2core.SerialBytes(sha2core.Family64))
}
