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
// github.com:SymbolNotFound/gosha2/internal/word/word.go

// Package word provides the single width-dependent primitive the SHA-2
// compression core is built on: big-endian load/store and rotation over
// either a 32-bit or 64-bit unsigned word, shared by both families via a
// type parameter instead of being duplicated per width.
package word

import "encoding/binary"

// Word is the unsigned integer underlying one SHA-2 family's arithmetic:
// uint32 for SHA-224/SHA-256, uint64 for SHA-384/SHA-512/SHA-512-256.
type Word interface {
	~uint32 | ~uint64
}

// Ops bundles the big-endian packing functions for one concrete Word type,
// since Go generics have no way to specialize encoding/binary calls on a
// type parameter alone.
type Ops[W Word] struct {
	Bits    int
	LoadBE  func(b []byte) W
	StoreBE func(b []byte, w W)
}

// Ops32 packs/unpacks uint32 words, used by the 32-bit family (SHA-224/256).
var Ops32 = Ops[uint32]{
	Bits:    32,
	LoadBE:  func(b []byte) uint32 { return binary.BigEndian.Uint32(b) },
	StoreBE: func(b []byte, w uint32) { binary.BigEndian.PutUint32(b, w) },
}

// Ops64 packs/unpacks uint64 words, used by the 64-bit family (SHA-384/512/512-256).
var Ops64 = Ops[uint64]{
	Bits:    64,
	LoadBE:  func(b []byte) uint64 { return binary.BigEndian.Uint64(b) },
	StoreBE: func(b []byte, w uint64) { binary.BigEndian.PutUint64(b, w) },
}

// RotR rotates x right by n bits within a bits-wide word. n must be in (0, bits).
func RotR[W Word](x W, n, bits int) W {
	return (x >> uint(n)) | (x << uint(bits-n))
}
