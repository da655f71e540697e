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
// github.com:SymbolNotFound/gosha2/cmd/shasum/variants.go

package main

import (
	"fmt"

	"github.com/SymbolNotFound/gosha2/sha224"
	"github.com/SymbolNotFound/gosha2/sha256"
	"github.com/SymbolNotFound/gosha2/sha384"
	"github.com/SymbolNotFound/gosha2/sha512"
	"github.com/SymbolNotFound/gosha2/sha512256"
)

// hasher is the common shape of a resumable, checkpointable hasher, hiding
// the five otherwise-identical per-variant packages behind one interface so
// the CLI layer can select a variant by flag instead of by import.
type hasher interface {
	Write(p []byte) (int, error)
	Sum() []byte
	Checkpoint() []byte
}

type variant struct {
	name            string
	checkpointBytes int
	newHasher       func() hasher
	fromCheckpoint  func(raw []byte) (hasher, error)
}

var variants = map[string]variant{
	"sha224": {
		name:            "sha224",
		checkpointBytes: sha224.CHECKPOINT_BYTES,
		newHasher:       func() hasher { return sha224Hasher{sha224.New()} },
		fromCheckpoint: func(raw []byte) (hasher, error) {
			cp, err := sha224.CheckpointFromBytes(raw)
			if err != nil {
				return nil, err
			}
			h, err := sha224.NewFromCheckpoint(cp)
			if err != nil {
				return nil, err
			}
			return sha224Hasher{h}, nil
		},
	},
	"sha256": {
		name:            "sha256",
		checkpointBytes: sha256.CHECKPOINT_BYTES,
		newHasher:       func() hasher { return sha256Hasher{sha256.New()} },
		fromCheckpoint: func(raw []byte) (hasher, error) {
			cp, err := sha256.CheckpointFromBytes(raw)
			if err != nil {
				return nil, err
			}
			h, err := sha256.NewFromCheckpoint(cp)
			if err != nil {
				return nil, err
			}
			return sha256Hasher{h}, nil
		},
	},
	"sha384": {
		name:            "sha384",
		checkpointBytes: sha384.CHECKPOINT_BYTES,
		newHasher:       func() hasher { return sha384Hasher{sha384.New()} },
		fromCheckpoint: func(raw []byte) (hasher, error) {
			cp, err := sha384.CheckpointFromBytes(raw)
			if err != nil {
				return nil, err
			}
			h, err := sha384.NewFromCheckpoint(cp)
			if err != nil {
				return nil, err
			}
			return sha384Hasher{h}, nil
		},
	},
	"sha512": {
		name:            "sha512",
		checkpointBytes: sha512.CHECKPOINT_BYTES,
		newHasher:       func() hasher { return sha512Hasher{sha512.New()} },
		fromCheckpoint: func(raw []byte) (hasher, error) {
			cp, err := sha512.CheckpointFromBytes(raw)
			if err != nil {
				return nil, err
			}
			h, err := sha512.NewFromCheckpoint(cp)
			if err != nil {
				return nil, err
			}
			return sha512Hasher{h}, nil
		},
	},
	"sha512256": {
		name:            "sha512256",
		checkpointBytes: sha512256.CHECKPOINT_BYTES,
		newHasher:       func() hasher { return sha512256Hasher{sha512256.New()} },
		fromCheckpoint: func(raw []byte) (hasher, error) {
			cp, err := sha512256.CheckpointFromBytes(raw)
			if err != nil {
				return nil, err
			}
			h, err := sha512256.NewFromCheckpoint(cp)
			if err != nil {
				return nil, err
			}
			return sha512256Hasher{h}, nil
		},
	},
}

func lookupVariant(name string) (variant, error) {
	v, ok := variants[name]
	if !ok {
		return variant{}, fmt.Errorf("unknown variant %q (want one of sha224, sha256, sha384, sha512, sha512256)", name)
	}
	return v, nil
}

type sha224Hasher struct{ h sha224.Hasher }

func (a sha224Hasher) Write(p []byte) (int, error) { return a.h.Write(p) }
func (a sha224Hasher) Sum() []byte                 { return a.h.Hash().Bytes() }
func (a sha224Hasher) Checkpoint() []byte          { return a.h.Checkpoint().Raw() }

type sha256Hasher struct{ h sha256.Hasher }

func (a sha256Hasher) Write(p []byte) (int, error) { return a.h.Write(p) }
func (a sha256Hasher) Sum() []byte                 { return a.h.Hash().Bytes() }
func (a sha256Hasher) Checkpoint() []byte          { return a.h.Checkpoint().Raw() }

type sha384Hasher struct{ h sha384.Hasher }

func (a sha384Hasher) Write(p []byte) (int, error) { return a.h.Write(p) }
func (a sha384Hasher) Sum() []byte                 { return a.h.Hash().Bytes() }
func (a sha384Hasher) Checkpoint() []byte          { return a.h.Checkpoint().Raw() }

type sha512Hasher struct{ h sha512.Hasher }

func (a sha512Hasher) Write(p []byte) (int, error) { return a.h.Write(p) }
func (a sha512Hasher) Sum() []byte                 { return a.h.Hash().Bytes() }
func (a sha512Hasher) Checkpoint() []byte          { return a.h.Checkpoint().Raw() }

type sha512256Hasher struct{ h sha512256.Hasher }

func (a sha512256Hasher) Write(p []byte) (int, error) { return a.h.Write(p) }
func (a sha512256Hasher) Sum() []byte                 { return a.h.Hash().Bytes() }
func (a sha512256Hasher) Checkpoint() []byte          { return a.h.Checkpoint().Raw() }
