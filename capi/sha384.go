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
// github.com:SymbolNotFound/gosha2/capi/sha384.go

package capi

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
)

const sha384DigestBytes = 48

//export sha384_init
func sha384_init(h unsafe.Pointer) C.size_t {
	if h != nil {
		initInto(sha2core.Family64, sha2core.IV384, h)
	}
	return C.size_t(hasherSize(sha2core.Family64))
}

//export sha384_reset
func sha384_reset(h unsafe.Pointer) {
	resetInto(sha2core.Family64, sha2core.IV384, h)
}

//export sha384_update
func sha384_update(h, data unsafe.Pointer, length C.size_t) {
	updateInto(sha2core.Family64, sha2core.IV384, h, data, int(length))
}

//export sha384_finalize
func sha384_finalize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		finalizeInto(sha2core.Family64, sha2core.IV384, h, out, sha384DigestBytes)
	}
	return C.size_t(sha384DigestBytes)
}

//export sha384_digest
func sha384_digest(data unsafe.Pointer, length C.size_t, out unsafe.Pointer) C.size_t {
	if out != nil {
		digestInto(sha2core.Family64, sha2core.IV384, data, out, int(length), sha384DigestBytes)
	}
	return C.size_t(sha384DigestBytes)
}

//export sha384_serialize
func sha384_serialize(h, out unsafe.Pointer) C.size_t {
	if out != nil {
		serializeInto(sha2core.Family64, h, out)
	}
	return C.size_t(hasherSize(sha2core.Family64))
}

//export sha384_deserialize
func sha384_deserialize(c, h unsafe.Pointer) C.size_t {
	if h == nil {
		return C.size_t(hasherSize(sha2core.Family64))
	}
	if !deserializeInto(sha2core.Family64, sha2core.IV384, c, h) {
		return 0
	}
	return C.size_t(hasherSize(sha2core.Family64))
}
