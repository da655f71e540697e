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
// github.com:SymbolNotFound/gosha2/sha512/hash.go

// Package sha512 implements FIPS 180-4 SHA-512: a 64-bit-word, 80-round
// member of the SHA-2 family with a 64-byte digest.
package sha512

import (
	"io"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
)

type Hasher interface {
	io.Writer
	Hash() Digest
	Reset()
	Checkpoint() Checkpoint
}

// Simple interface for hashing the provided string into a Digest.
//
// If intending to call this frequently, allocate the hasher once via New()
// and call Write(...) / Hash() / Reset() to reuse the buffer and digest
// arrays and avoid unnecessary re-allocations.
func HashString(input string) (Digest, error) {
	return HashBytes([]byte(input))
}

// Simple interface for hashing the provided byte-slice into a Digest.
func HashBytes(input []byte) (Digest, error) {
	hasher := New()
	if _, err := hasher.Write(input); err != nil {
		return nil, err
	}
	return hasher.Hash(), nil
}

// SHA-512 uses a fixed block size of 1024 bits.
const BLOCK_BITS = 1024
const BLOCK_BYTES = 128

// The digest is always 64 bytes.
const DIGEST_BYTES = 64

// CHECKPOINT_BYTES is the fixed size of a serialized Checkpoint: 64 (state)
// + 128 (buffer) + 1 (buffer_len) + 16 (length field).
const CHECKPOINT_BYTES = 209

type hasher struct {
	inner *sha2core.Hasher[uint64]
}

// Constructor for a new Hasher instance.
func New() Hasher {
	return &hasher{inner: sha2core.NewHasher(sha2core.Family64, sha2core.IV512)}
}

// Reset the hasher back to its just-constructed state.
func (h *hasher) Reset() {
	h.inner.Reset()
}

// Write hashes the contents of message, satisfying io.Writer.
func (h *hasher) Write(message []byte) (int, error) {
	return h.inner.Write(message)
}

// Hash finalizes the digest and resets the hasher so it can be reused.
func (h *hasher) Hash() Digest {
	sum := h.inner.Sum(DIGEST_BYTES)
	d := newDigest(sum)
	h.Reset()
	return d
}

// Checkpoint captures the hasher's current state as a fixed-size, opaque
// byte blob that can be persisted and later resumed with NewFromCheckpoint.
func (h *hasher) Checkpoint() Checkpoint {
	var cp Checkpoint
	sha2core.Serialize(h.inner, cp.raw[:])
	return cp
}

// NewFromCheckpoint reconstructs a Hasher from a previously captured
// Checkpoint. It fails with sha2core.ErrInvalidCheckpoint if the checkpoint
// encodes a buffer length that does not fit within one block.
func NewFromCheckpoint(cp Checkpoint) (Hasher, error) {
	inner, err := sha2core.Deserialize(sha2core.Family64, sha2core.IV512, cp.raw[:])
	if err != nil {
		return nil, err
	}
	return &hasher{inner: inner}, nil
}
