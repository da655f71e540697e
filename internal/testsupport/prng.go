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
// github.com:SymbolNotFound/gosha2/internal/testsupport/prng.go

// Package testsupport provides deterministic, seed-reproducible byte
// streams for property-based tests. It is imported only from _test.go
// files: none of the library's non-test code depends on it.
package testsupport

import (
	"encoding/binary"

	"github.com/SymbolNotFound/gosha2/sha256"
)

// ByteRing is a deterministic pseudorandom byte stream seeded from a
// uint64. Re-seeding with the same value always reproduces the same
// stream, so a failing property-based test can be pinned to a fixture by
// recording the seed.
//
// It works by repeatedly hashing a running digest and draining its 32
// bytes before re-hashing, the same ring-buffer shape as a linear
// hash-based generator: refill on exhaustion, never reuse output bytes
// across refills.
type ByteRing struct {
	digest sha256.Digest
	offset int
}

// NewByteRing seeds a ring from seed and any additional uint64 values,
// all folded together through one SHA-256 call.
func NewByteRing(seed uint64, more ...uint64) *ByteRing {
	buf := make([]byte, 8*(1+len(more)))
	binary.BigEndian.PutUint64(buf[0:], seed)
	for i, v := range more {
		binary.BigEndian.PutUint64(buf[8*(i+1):], v)
	}
	digest, err := sha256.HashBytes(buf)
	if err != nil {
		// HashBytes only fails if Write does, and sha2core's Write never
		// returns an error; this path is unreachable.
		panic(err)
	}
	return &ByteRing{digest: digest, offset: 0}
}

// Next returns the next n pseudorandom bytes, refilling the underlying
// digest as needed.
func (r *ByteRing) Next(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if r.offset == sha256.DIGEST_BYTES {
			next, err := sha256.HashBytes(r.digest.Bytes())
			if err != nil {
				panic(err)
			}
			r.digest = next
			r.offset = 0
		}
		out[i] = r.digest.Bytes()[r.offset]
		r.offset++
	}
	return out
}

// Uint64 draws the next 8 bytes as a big-endian uint64.
func (r *ByteRing) Uint64() uint64 {
	return binary.BigEndian.Uint64(r.Next(8))
}
