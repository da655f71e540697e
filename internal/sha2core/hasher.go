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
// github.com:SymbolNotFound/gosha2/internal/sha2core/hasher.go

package sha2core

import "github.com/SymbolNotFound/gosha2/internal/word"

// Uint128 is a 128-bit unsigned counter, wide enough to hold the byte count
// of any message the 64-bit family can address. All arithmetic on it wraps,
// matching the source's explicit wrapping_add calls: reaching 2^128 bytes
// is considered unreachable in practice and is not guarded against.
type Uint128 struct {
	Hi, Lo uint64
}

// AddBytes adds n (a byte count) to u, wrapping on overflow.
func (u Uint128) AddBytes(n int) Uint128 {
	lo := u.Lo + uint64(n)
	hi := u.Hi
	if lo < u.Lo {
		hi++
	}
	return Uint128{Hi: hi, Lo: lo}
}

// BitsMod2_128 returns u*8 mod 2^128: the bit count used only inside the
// padding step, never for the checkpoint's byte-count field.
func (u Uint128) BitsMod2_128() Uint128 {
	return Uint128{
		Hi: (u.Hi << 3) | (u.Lo >> 61),
		Lo: u.Lo << 3,
	}
}

// Hasher is the generic streaming SHA-2 state: chaining state, partial
// block buffer, and total byte count. It is instantiated once per word
// width and bound to one Variant's IV by the public per-variant packages.
type Hasher[W word.Word] struct {
	fam       *Family[W]
	iv        [8]W
	state     [8]W
	buffer    []byte
	bufferLen int
	total     Uint128
}

// NewHasher constructs a Hasher bound to fam and initialized to iv. The
// buffer is allocated once here and Write never allocates; Sum is not
// allocation-free, since each call allocates a scratch padding block and
// the returned digest slice. See SPEC_FULL.md section 3 for why a
// construction-time buffer allocation stands in for a true compile-time
// array when the buffer size depends on Family, not on the type parameter
// alone.
func NewHasher[W word.Word](fam *Family[W], iv [8]W) *Hasher[W] {
	h := &Hasher[W]{fam: fam, iv: iv, buffer: make([]byte, fam.BlockBytes)}
	h.Reset()
	return h
}

// Reset restores the hasher to its just-constructed state.
func (h *Hasher[W]) Reset() {
	h.state = h.iv
	for i := range h.buffer {
		h.buffer[i] = 0
	}
	h.bufferLen = 0
	h.total = Uint128{}
}

// Write feeds data into the hasher, satisfying io.Writer. It never fails.
func (h *Hasher[W]) Write(data []byte) (int, error) {
	n := len(data)
	h.total = h.total.AddBytes(n)

	B := h.fam.BlockBytes

	if h.bufferLen > 0 {
		need := B - h.bufferLen
		if len(data) < need {
			copy(h.buffer[h.bufferLen:], data)
			h.bufferLen += len(data)
			return n, nil
		}
		copy(h.buffer[h.bufferLen:], data[:need])
		Compress(h.fam, &h.state, h.buffer)
		data = data[need:]
		h.bufferLen = 0
	}

	for len(data) >= B {
		Compress(h.fam, &h.state, data[:B])
		data = data[B:]
	}

	if len(data) > 0 {
		copy(h.buffer, data)
		h.bufferLen = len(data)
	}

	return n, nil
}

// Sum finalizes the hasher and returns the first digestBytes bytes of the
// big-endian chaining state, without mutating h — repeated calls to Sum
// between Write calls return the same digest, matching hash.Hash semantics.
func (h *Hasher[W]) Sum(digestBytes int) []byte {
	B := h.fam.BlockBytes
	L := h.fam.LenFieldBytes
	padThreshold := B - L
	wordBytes := h.fam.Ops.Bits / 8

	state := h.state
	buf := make([]byte, B)
	copy(buf, h.buffer[:h.bufferLen])

	pos := h.bufferLen
	buf[pos] = 0x80
	pos++

	if pos > padThreshold {
		for i := pos; i < B; i++ {
			buf[i] = 0
		}
		Compress(h.fam, &state, buf)
		for i := range buf {
			buf[i] = 0
		}
		pos = 0
	}
	for i := pos; i < padThreshold; i++ {
		buf[i] = 0
	}

	bits := h.total.BitsMod2_128()
	writeByteCountBE(buf[padThreshold:B], bits, L)

	Compress(h.fam, &state, buf)

	full := make([]byte, 8*wordBytes)
	for i := 0; i < 8; i++ {
		h.fam.Ops.StoreBE(full[i*wordBytes:], state[i])
	}
	return full[:digestBytes]
}

// writeByteCountBE writes the low width*8 bits of v as a big-endian byte
// count into dst, which must be exactly width bytes long. width is 8 or 16
// in this codebase, never wider than Uint128 itself.
func writeByteCountBE(dst []byte, v Uint128, width int) {
	for i := 0; i < width; i++ {
		shift := uint(8 * (width - 1 - i))
		if shift >= 64 {
			dst[i] = byte(v.Hi >> (shift - 64))
		} else {
			dst[i] = byte(v.Lo >> shift)
		}
	}
}

// readByteCountBE is the inverse of writeByteCountBE, used by Deserialize.
func readByteCountBE(src []byte, width int) Uint128 {
	var v Uint128
	for i := 0; i < width; i++ {
		shift := uint(8 * (width - 1 - i))
		if shift >= 64 {
			v.Hi |= uint64(src[i]) << (shift - 64)
		} else {
			v.Lo |= uint64(src[i]) << shift
		}
	}
	return v
}
