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
// github.com:SymbolNotFound/gosha2/stream/pipeline.go

// Package stream wraps a single Hasher so that many goroutines can feed it
// input concurrently without each caller needing to hold a mutex. A Hasher
// itself is not safe for concurrent use (see SPEC_FULL.md section 5); this
// package is the one place that boundary is crossed, by funnelling every
// Feed call through one goroutine that alone touches the Hasher.
package stream

import "io"

// Hasher is the subset of a per-variant Hasher that a Pipeline needs. Every
// package under sha224/sha256/sha384/sha512/sha512256 satisfies it.
type Hasher interface {
	io.Writer
}

// Pipeline serializes concurrent writers onto one underlying Hasher. Close
// must be called exactly once, after which Feed panics.
type Pipeline interface {
	// Feed queues data to be written to the underlying Hasher. It may be
	// called concurrently from any number of goroutines; writes are
	// applied to the Hasher in the order Feed is called by any single
	// goroutine, but interleaved arbitrarily across goroutines.
	Feed(data []byte)

	// Close stops accepting Feed calls and waits for all queued writes to
	// be applied.
	Close()
}

type feedRequest struct {
	data []byte
	done chan<- struct{}
}

type pipeline struct {
	hasher  Hasher
	request chan feedRequest
	closed  chan struct{}
}

// New starts a Pipeline that owns hasher for its lifetime. No other
// goroutine should call hasher's Write directly while the Pipeline is open.
func New(hasher Hasher) Pipeline {
	p := &pipeline{
		hasher:  hasher,
		request: make(chan feedRequest),
		closed:  make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *pipeline) run() {
	for req := range p.request {
		_, _ = p.hasher.Write(req.data)
		close(req.done)
	}
	close(p.closed)
}

func (p *pipeline) Feed(data []byte) {
	done := make(chan struct{})
	p.request <- feedRequest{data: data, done: done}
	<-done
}

func (p *pipeline) Close() {
	close(p.request)
	<-p.closed
}
