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
// github.com:SymbolNotFound/gosha2/internal/sha2core/family.go

// Package sha2core holds the variant-parametric SHA-2 engine: the single
// compression routine, the single streaming/padding routine, and the single
// checkpoint routine shared by all five FIPS 180-4 variants. Everything here
// is written once per word width (uint32, uint64) using Go generics instead
// of being duplicated per variant.
package sha2core

import "github.com/SymbolNotFound/gosha2/internal/word"

// Family holds everything about one SHA-2 word width that the compression
// function and the streaming layer need: block geometry, round count,
// round constants, and the four sigma functions.
type Family[W word.Word] struct {
	Ops           word.Ops[W]
	BlockBytes    int
	Rounds        int
	LenFieldBytes int
	K             []W
	Sigma0        func(W) W
	Sigma1        func(W) W
	BigSigma0     func(W) W
	BigSigma1     func(W) W
}

// StateBytes is the size of the eight-word chaining state in bytes.
func (f *Family[W]) StateBytes() int {
	return 8 * (f.Ops.Bits / 8)
}

// Family32 is the 32-bit family shared by SHA-224 and SHA-256.
var Family32 = &Family[uint32]{
	Ops:           word.Ops32,
	BlockBytes:    64,
	Rounds:        64,
	LenFieldBytes: 8,
	K:             K256,
	Sigma0:        sigma0_32,
	Sigma1:        sigma1_32,
	BigSigma0:     bigSigma0_32,
	BigSigma1:     bigSigma1_32,
}

// Family64 is the 64-bit family shared by SHA-384, SHA-512 and SHA-512/256.
var Family64 = &Family[uint64]{
	Ops:           word.Ops64,
	BlockBytes:    128,
	Rounds:        80,
	LenFieldBytes: 16,
	K:             K512,
	Sigma0:        sigma0_64,
	Sigma1:        sigma1_64,
	BigSigma0:     bigSigma0_64,
	BigSigma1:     bigSigma1_64,
}

// Compress runs one Merkle-Damgard round function over block, mixing it
// into state in place. block must be exactly fam.BlockBytes long; the
// operation is total on inputs of that exact size and performs no
// allocation, so it is safe to call from a freestanding/no-heap caller
// holding its own state and block arrays.
func Compress[W word.Word](fam *Family[W], state *[8]W, block []byte) {
	wordBytes := fam.Ops.Bits / 8

	var w [16]W
	for i := 0; i < 16; i++ {
		w[i] = fam.Ops.LoadBE(block[i*wordBytes:])
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < fam.Rounds; i++ {
		if i >= 16 {
			idx := i % 16
			w[idx] = fam.Sigma0(w[(i+1)%16]) + w[(i+9)%16] + fam.Sigma1(w[(i+14)%16]) + w[idx]
		}

		ch := (e & f) ^ (^e & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t1 := h + fam.BigSigma1(e) + ch + fam.K[i] + w[i%16]
		t2 := fam.BigSigma0(a) + maj

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
