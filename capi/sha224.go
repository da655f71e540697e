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
// github.com:SymbolNotFound/gosha2/capi/sha224.go

package capi

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
)

const sha224DigestBytes = 28

//export sha224_init
func sha224_init(h unsafe.Pointer) C.size_t {
	if h != nil {
		initInto(sha2core.Family32, sha2core.IV224, h)
	}
	return C.size_t(hasherSize(sha2core.Family32))
}

//export sha224_reset
func sha224_reset(h unsafe.Pointer) {
	resetInto(sha2core.Family32, sha2core.IV224, h)
}

//export sha224_update
func sha224_update(h, data unsafe.Pointer, length C.size_t) {
	updateInto(sha2core.Family32, sha2core.IV224, h, data, int(length))
}

//export sha224_finalize
func sha224_finalize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		finalizeInto(sha2core.Family32, sha2core.IV224, h, out, sha224DigestBytes)
	}
	return C.size_t(sha224DigestBytes)
}

//export sha224_digest
func sha224_digest(data unsafe.Pointer, length C.size_t, out unsafe.Pointer) C.size_t {
	if out != nil {
		digestInto(sha2core.Family32, sha2core.IV224, data, out, int(length), sha224DigestBytes)
	}
	return C.size_t(sha224DigestBytes)
}

//export sha224_serialize
func sha224_serialize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		serializeInto(sha2core.Family32, h, out)
	}
	return C.size_t(hasherSize(sha2core.Family32))
}

//export sha224_deserialize
func sha224_deserialize(c, h unsafe.Pointer) C.size_t {
	if h == nil {
		return C.size_t(hasherSize(sha2core.Family32))
	}
	if !deserializeInto(sha2core.Family32, sha2core.IV224, c, h) {
		return 0
	}
	return C.size_t(hasherSize(sha2core.Family32))
}
