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
// github.com:SymbolNotFound/gosha2/internal/sha2core/sigma32.go

package sha2core

import "github.com/SymbolNotFound/gosha2/internal/word"

// The four message-schedule and compression mixing functions for the
// 32-bit family (SHA-224, SHA-256), per FIPS 180-4 section 4.1.2.

func sigma0_32(x uint32) uint32 {
	return word.RotR(x, 7, 32) ^ word.RotR(x, 18, 32) ^ (x >> 3)
}

func sigma1_32(x uint32) uint32 {
	return word.RotR(x, 17, 32) ^ word.RotR(x, 19, 32) ^ (x >> 10)
}

func bigSigma0_32(x uint32) uint32 {
	return word.RotR(x, 2, 32) ^ word.RotR(x, 13, 32) ^ word.RotR(x, 22, 32)
}

func bigSigma1_32(x uint32) uint32 {
	return word.RotR(x, 6, 32) ^ word.RotR(x, 11, 32) ^ word.RotR(x, 25, 32)
}
