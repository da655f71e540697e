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
// github.com:SymbolNotFound/gosha2/cmd/shasum/root.go

package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var variantName string

func init() {
	RootCmd.AddCommand(DigestCmd)
	RootCmd.AddCommand(CheckpointCmd)
	CheckpointCmd.AddCommand(CheckpointSaveCmd)
	CheckpointCmd.AddCommand(CheckpointResumeCmd)

	for _, cmd := range []*cobra.Command{DigestCmd, CheckpointSaveCmd, CheckpointResumeCmd} {
		cmd.Flags().StringVarP(&variantName, "variant", "V", "sha256",
			"one of sha224, sha256, sha384, sha512, sha512256")
	}

	var base64Output bool
	DigestCmd.Flags().BoolVarP(&base64Output, "base64", "b", false, "print the digest in base-64 instead of hex")
	digestBase64 = &base64Output

	var outPath string
	CheckpointSaveCmd.Flags().StringVarP(&outPath, "out", "o", "", "path to write the checkpoint to (default: stdout)")
	checkpointOutPath = &outPath

	var resumeFrom string
	CheckpointResumeCmd.Flags().StringVarP(&resumeFrom, "checkpoint", "c", "", "path to a previously saved checkpoint (required)")
	checkpointInPath = &resumeFrom
}

// RootCmd is the main command for the 'shasum' binary.
var RootCmd = &cobra.Command{
	Use:   "shasum",
	Short: "`shasum` computes and resumes FIPS 180-4 SHA-2 digests",
	Long:  "`shasum` computes FIPS 180-4 SHA-2 digests and can pause/resume a hash via checkpoints.",
	Run: func(cmd *cobra.Command, args []string) {
		// nolint:errcheck
		cmd.Usage()
	},
}

// DigestCmd hashes a file (or stdin) and prints the digest.
var DigestCmd = &cobra.Command{
	Use:   "digest [file]",
	Short: "compute the digest of a file, or of stdin if no file is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := lookupVariant(variantName)
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		h := v.newHasher()
		if _, err := h.Write(input); err != nil {
			return err
		}
		sum := h.Sum()

		if *digestBase64 {
			fmt.Println(base64.StdEncoding.EncodeToString(sum))
		} else {
			fmt.Printf("%x\n", sum)
		}
		return nil
	},
}

var digestBase64 *bool

// CheckpointCmd groups the checkpoint save/resume subcommands.
var CheckpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "save or resume a paused hash's state",
}

var checkpointOutPath *string

// CheckpointSaveCmd hashes a file (or stdin) and writes the resulting
// checkpoint instead of a digest, so the hash can be resumed later.
var CheckpointSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "hash a file (or stdin) and save the paused state as a checkpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := lookupVariant(variantName)
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		h := v.newHasher()
		if _, err := h.Write(input); err != nil {
			return err
		}
		cp := h.Checkpoint()

		if *checkpointOutPath == "" {
			_, err := os.Stdout.Write(cp)
			return err
		}
		return os.WriteFile(*checkpointOutPath, cp, 0o644)
	},
}

var checkpointInPath *string

// CheckpointResumeCmd loads a previously saved checkpoint, feeds it
// additional input (a file or stdin), and prints the final digest.
var CheckpointResumeCmd = &cobra.Command{
	Use:   "resume [file]",
	Short: "resume a hash from a saved checkpoint and print the final digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := lookupVariant(variantName)
		if err != nil {
			return err
		}
		if *checkpointInPath == "" {
			return fmt.Errorf("--checkpoint is required")
		}

		raw, err := os.ReadFile(*checkpointInPath)
		if err != nil {
			return err
		}
		h, err := v.fromCheckpoint(raw)
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}
		if _, err := h.Write(input); err != nil {
			return err
		}

		fmt.Printf("%x\n", h.Sum())
		return nil
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
