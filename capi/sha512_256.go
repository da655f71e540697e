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
// github.com:SymbolNotFound/gosha2/capi/sha512_256.go

package capi

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
)

const sha512256DigestBytes = 32

//export sha512_256_init
func sha512_256_init(h unsafe.Pointer) C.size_t {
	if h != nil {
		initInto(sha2core.Family64, sha2core.IV512256, h)
	}
	return C.size_t(hasherSize(sha2core.Family64))
}

//export sha512_256_reset
func sha512_256_reset(h unsafe.Pointer) {
	resetInto(sha2core.Family64, sha2core.IV512256, h)
}

//export sha512_256_update
func sha512_256_update(h, data unsafe.Pointer, length C.size_t) {
	updateInto(sha2core.Family64, sha2core.IV512256, h, data, int(length))
}

//export sha512_256_finalize
func sha512_256_finalize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		finalizeInto(sha2core.Family64, sha2core.IV512256, h, out, sha512256DigestBytes)
	}
	return C.size_t(sha512256DigestBytes)
}

//export sha512_256_digest
func sha512_256_digest(data unsafe.Pointer, length C.size_t, out unsafe.Pointer) C.size_t {
	if out != nil {
		digestInto(sha2core.Family64, sha2core.IV512256, data, out, int(length), sha512256DigestBytes)
	}
	return C.size_t(sha512256DigestBytes)
}

//export sha512_256_serialize
func sha512_256_serialize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		serializeInto(sha2core.Family64, h, out)
	}
	return C.size_t(hasherSize(sha2core.Family64))
}

//export sha512_256_deserialize
func sha512_256_deserialize(c, h unsafe.Pointer) C.size_t {
	if h == nil {
		return C.size_t(hasherSize(sha2core.Family64))
	}
	if !deserializeInto(sha2core.Family64, sha2core.IV512256, c, h) {
		return 0
	}
	return C.size_t(hasherSize(sha2core.Family64))
}
