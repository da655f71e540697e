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
// github.com:SymbolNotFound/gosha2/capi/common.go

// Package capi is the cgo export facade described in SPEC_FULL.md section 6:
// one init/reset/update/finalize/digest/serialize/deserialize function set
// per variant, built with -buildmode=c-archive by cmd/libsha2. It is a thin,
// mechanical wrapper -- the generic helpers here just adapt sha2core's
// already-serialized byte layout to caller-owned C buffers, following the
// null-pointer size-probe convention every exported function below uses.
//
// The caller-owned opaque Hasher buffer *is* a sha2core checkpoint: its
// layout and size are exactly what Serialize/Deserialize already produce
// and consume, so no separate C struct layout needs to be hand-maintained
// here.
package capi

import (
	"unsafe"

	"github.com/SymbolNotFound/gosha2/internal/sha2core"
	"github.com/SymbolNotFound/gosha2/internal/word"
)

func hasherSize[W word.Word](fam *sha2core.Family[W]) int {
	return sha2core.SerialBytes(fam)
}

func initInto[W word.Word](fam *sha2core.Family[W], iv [8]W, h unsafe.Pointer) {
	dst := unsafe.Slice((*byte)(h), hasherSize(fam))
	sha2core.Serialize(sha2core.NewHasher(fam, iv), dst)
}

func resetInto[W word.Word](fam *sha2core.Family[W], iv [8]W, h unsafe.Pointer) {
	initInto(fam, iv, h)
}

func updateInto[W word.Word](fam *sha2core.Family[W], iv [8]W, h, data unsafe.Pointer, length int) {
	buf := unsafe.Slice((*byte)(h), hasherSize(fam))
	hasher, err := sha2core.Deserialize(fam, iv, buf)
	if err != nil {
		// The caller-owned buffer was produced by a prior init/update call
		// on this same Hasher; if it has since been corrupted, the memory-
		// safety contract in SPEC_FULL.md section 6 makes this undefined
		// behavior, not a reportable error -- silently no-op instead of
		// writing through a Hasher built from invalid state.
		return
	}
	if length > 0 {
		_, _ = hasher.Write(unsafe.Slice((*byte)(data), length))
	}
	sha2core.Serialize(hasher, buf)
}

func finalizeInto[W word.Word](fam *sha2core.Family[W], iv [8]W, h, out unsafe.Pointer, digestBytes int) {
	buf := unsafe.Slice((*byte)(h), hasherSize(fam))
	hasher, err := sha2core.Deserialize(fam, iv, buf)
	if err != nil {
		return
	}
	sum := hasher.Sum(digestBytes)
	if out != nil {
		copy(unsafe.Slice((*byte)(out), digestBytes), sum)
	}
}

func digestInto[W word.Word](fam *sha2core.Family[W], iv [8]W, data, out unsafe.Pointer, length, digestBytes int) {
	hasher := sha2core.NewHasher(fam, iv)
	if length > 0 {
		_, _ = hasher.Write(unsafe.Slice((*byte)(data), length))
	}
	sum := hasher.Sum(digestBytes)
	if out != nil {
		copy(unsafe.Slice((*byte)(out), digestBytes), sum)
	}
}

func serializeInto[W word.Word](fam *sha2core.Family[W], h, out unsafe.Pointer) {
	size := hasherSize(fam)
	if out != nil {
		copy(unsafe.Slice((*byte)(out), size), unsafe.Slice((*byte)(h), size))
	}
}

// deserializeInto validates a checkpoint buffer c and, on success, copies it
// into the caller-owned Hasher buffer h. Returns true on success.
func deserializeInto[W word.Word](fam *sha2core.Family[W], iv [8]W, c, h unsafe.Pointer) bool {
	size := hasherSize(fam)
	src := unsafe.Slice((*byte)(c), size)
	if _, err := sha2core.Deserialize(fam, iv, src); err != nil {
		return false
	}
	if h != nil {
		copy(unsafe.Slice((*byte)(h), size), src)
	}
	return true
}
