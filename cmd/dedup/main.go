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
// github.com:SymbolNotFound/gosha2/cmd/dedup/main.go

package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/SymbolNotFound/gosha2/sha224"
	"github.com/SymbolNotFound/gosha2/sha256"
	"github.com/SymbolNotFound/gosha2/sha384"
	"github.com/SymbolNotFound/gosha2/sha512"
	"github.com/SymbolNotFound/gosha2/sha512256"
)

// hashFunc computes the content signature used to detect duplicates.
// Selected at startup by the -variant flag.
var hashFunc func([]byte) ([]byte, error)

func selectVariant(name string) (func([]byte) ([]byte, error), error) {
	switch name {
	case "sha224":
		return func(b []byte) ([]byte, error) {
			d, err := sha224.HashBytes(b)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		}, nil
	case "sha256":
		return func(b []byte) ([]byte, error) {
			d, err := sha256.HashBytes(b)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		}, nil
	case "sha384":
		return func(b []byte) ([]byte, error) {
			d, err := sha384.HashBytes(b)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		}, nil
	case "sha512":
		return func(b []byte) ([]byte, error) {
			d, err := sha512.HashBytes(b)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		}, nil
	case "sha512256":
		return func(b []byte) ([]byte, error) {
			d, err := sha512256.HashBytes(b)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown -variant %q (want one of sha224, sha256, sha384, sha512, sha512256)", name)
	}
}

// Represents the path and its content's signature.
type Signature struct {
	Content  hash64 `json:"signature"`
	Filepath string `json:"file_path"`
}

// An object that keeps track of all signatures seen so far and their paths.
// Also tracks whether duplicates should be deleted or not, and holds the
// channel that writes each duplicate record to the --out-file.
type ContentIndex struct {
	index  map[hash64]Signature
	output chan<- Signature
	delete bool
}

// Inspect each file under the input path (indicated by --in-path -- by default,
// the current directory) and record the paths which containe the same content.
// Each duplicate is recorded as one JSON line ({"signature", "file_path"}) in
// the file indicated by --out-file, where signature is the base64
// representation of the selected variant's hash of the bytes (so, very
// unlikely to have collisions as long as the files are less than 2^64 bytes).
//
// Example usage:
//   dedup --variant sha256 --delete --in-path . --out-file ../duplicates.jsonl
//
// It is recommended not to use the --delete flag the first time running this
// binary, so that you can more readily see the effect that it would have after
// running, before impacting the source directory.
// This is why the default is --delete=false instead of --delete=true.

func main() {
	inpath := flag.String("in-path", ".", "directory to scan for duplicate file contents")
	outpath := flag.String("out-file", "duplicates.jsonl",
		"path of the JSON-lines file that records each duplicate's signature and path")
	delete := flag.Bool("delete", false,
		"also delete the contents from inpath, moving a unique copy into ./saved")
	variant := flag.String("variant", "sha256",
		"hash variant to use: sha224, sha256, sha384, sha512, or sha512256")

	flag.Parse()

	fn, err := selectVariant(*variant)
	if err != nil {
		log.Fatal(err)
	}
	hashFunc = fn

	fmt.Printf("inspecting files under %s using %s\n", *inpath, *variant)

	// Some examples of ignored file names, add to this if desired,
	// Sometimes files should not be deleted from source even if they're copies.
	ignored := []string{
		".gitignore",
	}

	cas := newContentIndex(*outpath, *delete)
	err = filepath.WalkDir(*inpath,
		func(path string, entry fs.DirEntry, err error) error {
			if entry.IsDir() {
				return nil
			}
			if err != nil {
				log.Fatal(err)
			}
			for _, ignoreName := range ignored {
				if entry.Name() == ignoreName {
					return nil
				}
			}
			err = cas.addToIndex(path)
			return err
		})
	if err != nil {
		fmt.Println(err)
	}
}

type hash64 string

func BytesToBase64(bytes []byte) hash64 {
	return hash64(base64.StdEncoding.EncodeToString(bytes))
}

func newContentIndex(outpath string, deleteDuplicates bool) *ContentIndex {
	index := ContentIndex{
		make(map[hash64]Signature),
		newWriter(outpath),
		deleteDuplicates}
	return &index
}

// Compute the signature of the contents found at `filepath` and store/append to
// the entry in `cas` as well as the corresponding file for tracking duplicates.
func (index *ContentIndex) addToIndex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sum, err := hashFunc(data)
	if err != nil {
		return err
	}

	sig64 := BytesToBase64(sum)
	signature, exists := index.index[sig64]
	if !exists {
		// First time this signature was found; record it and move on.
		signature = Signature{sig64, path}
		index.index[sig64] = signature
		return nil
	}

	// Otherwise, this signature was found already -- record the duplicate.
	basepath := filepath.Base(signature.Filepath)

	if signature.Filepath != basepath {
		if index.delete {
			savedpath := filepath.Join(".", "saved", basepath)
			os.Rename(signature.Filepath, savedpath)
			index.output <- Signature{sig64, basepath}
		}
		index.output <- signature
		signature.Filepath = basepath
	} else if index.delete {
		os.Remove(path)
	}

	index.output <- Signature{sig64, path}
	return nil
}

// Creates a signature writer in json-lines format (thread-safe/goroutine-safe).
func newWriter(outpath string) chan<- Signature {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel := make(chan Signature)
	go func() {
		defer file.Close()
		writer := bufio.NewWriter(file)

		for sig := range channel {
			bytes, err := json.Marshal(sig)
			if err != nil {
				fmt.Printf("%s error:\n   %s\n", sig.Filepath, err)
				continue
			}
			writer.Write(bytes)
			writer.WriteByte('\n')
			writer.Flush()
		}
		writer.Flush()
	}()

	return channel
}
