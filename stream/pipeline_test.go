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
// github.com:SymbolNotFound/gosha2/stream/pipeline_test.go

package stream_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/gosha2/sha256"
	"github.com/SymbolNotFound/gosha2/stream"
)

func Test_Pipeline_SerializesWholeChunks(t *testing.T) {
	h := sha256.New()
	p := stream.New(h)

	var wg sync.WaitGroup
	chunks := [][]byte{[]byte("abc"), []byte("def"), []byte("ghi")}
	for _, c := range chunks {
		wg.Add(1)
		go func(data []byte) {
			defer wg.Done()
			p.Feed(data)
		}(c)
	}
	wg.Wait()
	p.Close()

	got := h.Hash()

	// Feed interleaves across goroutines, but each chunk is written whole
	// and uninterrupted, so the result must match some ordering of the
	// three chunks -- membership check instead of a single fixed digest.
	valid := allOrderings(chunks)
	require.True(t, valid[string(got.Bytes())])
}

// allOrderings hashes every permutation of chunks with a fresh sha256
// Hasher and returns a set keyed by the raw digest bytes, used to
// confirm the Pipeline's output always matches some valid serialization.
func allOrderings(chunks [][]byte) map[string]bool {
	results := map[string]bool{}
	var permute func(remaining, chosen []int)
	permute = func(remaining, chosen []int) {
		if len(remaining) == 0 {
			h := sha256.New()
			for _, idx := range chosen {
				_, _ = h.Write(chunks[idx])
			}
			results[string(h.Hash().Bytes())] = true
			return
		}
		for i, v := range remaining {
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			permute(rest, append(chosen, v))
		}
	}
	all := make([]int, len(chunks))
	for i := range all {
		all[i] = i
	}
	permute(all, nil)
	return results
}
