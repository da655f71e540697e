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
// github.com:SymbolNotFound/gosha2/internal/sha2core/variant.go

package sha2core

import "github.com/SymbolNotFound/gosha2/internal/word"

// Variant binds a Family to one digest kind: its initial chaining value and
// its output truncation length. The five FIPS 180-4 variants are the five
// package-level values below; every public sha22x/sha5xx package binds to
// exactly one of them.
type Variant[W word.Word] struct {
	Family      *Family[W]
	IV          [8]W
	DigestBytes int
}

var SHA224 = &Variant[uint32]{Family: Family32, IV: IV224, DigestBytes: 28}
var SHA256 = &Variant[uint32]{Family: Family32, IV: IV256, DigestBytes: 32}
var SHA384 = &Variant[uint64]{Family: Family64, IV: IV384, DigestBytes: 48}
var SHA512 = &Variant[uint64]{Family: Family64, IV: IV512, DigestBytes: 64}
var SHA512256 = &Variant[uint64]{Family: Family64, IV: IV512256, DigestBytes: 32}
