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
// github.com:SymbolNotFound/gosha2/internal/sha2core/checkpoint.go

package sha2core

import (
	"errors"

	"github.com/SymbolNotFound/gosha2/internal/word"
)

// ValidationError is the one failure mode the core exposes: a checkpoint
// whose encoded buffer length does not fit the family's block size.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// ErrInvalidCheckpoint is returned by Deserialize when the checkpoint's
// buffer_len byte is >= the family's block size. Compare with errors.Is.
var ErrInvalidCheckpoint error = &ValidationError{"sha2core: invalid checkpoint: buffer length exceeds block size"}

// SerialBytes returns the fixed checkpoint length for fam: state + buffer +
// one buffer-length byte + the length field.
func SerialBytes[W word.Word](fam *Family[W]) int {
	return fam.StateBytes() + fam.BlockBytes + 1 + fam.LenFieldBytes
}

// Serialize writes h's current state into dst, which must be exactly
// SerialBytes(h.fam) long. Total: always succeeds.
func Serialize[W word.Word](h *Hasher[W], dst []byte) {
	wordBytes := h.fam.Ops.Bits / 8
	stateBytes := h.fam.StateBytes()

	for i := 0; i < 8; i++ {
		h.fam.Ops.StoreBE(dst[i*wordBytes:], h.state[i])
	}
	copy(dst[stateBytes:stateBytes+h.fam.BlockBytes], h.buffer)
	dst[stateBytes+h.fam.BlockBytes] = byte(h.bufferLen)
	writeByteCountBE(dst[stateBytes+h.fam.BlockBytes+1:], h.total, h.fam.LenFieldBytes)
}

// Deserialize reconstructs a Hasher from a checkpoint produced by Serialize
// for the same Family. src must be exactly SerialBytes(fam) long. iv is the
// Variant's initial chaining value, needed only so the reconstructed Hasher
// can support a later Reset().
func Deserialize[W word.Word](fam *Family[W], iv [8]W, src []byte) (*Hasher[W], error) {
	wordBytes := fam.Ops.Bits / 8
	stateBytes := fam.StateBytes()

	bufferLen := int(src[stateBytes+fam.BlockBytes])
	if bufferLen >= fam.BlockBytes {
		return nil, ErrInvalidCheckpoint
	}

	h := &Hasher[W]{fam: fam, iv: iv, buffer: make([]byte, fam.BlockBytes)}
	for i := 0; i < 8; i++ {
		h.state[i] = fam.Ops.LoadBE(src[i*wordBytes:])
	}
	copy(h.buffer, src[stateBytes:stateBytes+fam.BlockBytes])
	h.bufferLen = bufferLen
	h.total = readByteCountBE(src[stateBytes+fam.BlockBytes+1:], fam.LenFieldBytes)

	return h, nil
}

// IsInvalidCheckpoint reports whether err is (or wraps) ErrInvalidCheckpoint.
func IsInvalidCheckpoint(err error) bool {
	return errors.Is(err, ErrInvalidCheckpoint)
}
