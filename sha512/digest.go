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
// github.com:SymbolNotFound/gosha2/sha512/digest.go

package sha512

import "fmt"

type Digest interface {
	Bytes() []byte
}

func newDigest(sum []byte) Digest {
	d := digest{}
	copy(d.bytes[:], sum)
	return d
}

type digest struct {
	bytes [DIGEST_BYTES]byte
}

func (d digest) Bytes() []byte {
	return d.bytes[:]
}

// Checkpoint is a fixed-size, opaque snapshot of a Hasher's in-progress
// state. It carries no variant tag; callers that persist a Checkpoint must
// remember out-of-band that it came from this package's Hasher.
type Checkpoint struct {
	raw [CHECKPOINT_BYTES]byte
}

// Raw exposes the canonical byte layout described in SPEC_FULL.md section 3,
// for transport or persistence.
func (c Checkpoint) Raw() []byte {
	return c.raw[:]
}

// CheckpointFromBytes reconstructs a Checkpoint from bytes previously
// returned by Checkpoint.Raw, such as a checkpoint read back from a file.
// It only validates the length; NewFromCheckpoint performs the actual
// structural validation once the Checkpoint is used to resume a Hasher.
func CheckpointFromBytes(raw []byte) (Checkpoint, error) {
	var cp Checkpoint
	if len(raw) != CHECKPOINT_BYTES {
		return cp, fmt.Errorf("sha512: checkpoint must be %d bytes, got %d", CHECKPOINT_BYTES, len(raw))
	}
	copy(cp.raw[:], raw)
	return cp, nil
}
