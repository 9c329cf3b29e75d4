// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ristretto255vectors dumps small-multiple and Elligator2 test
// vectors for the ristretto255 group. It exists to let the arithmetic
// core be spot-checked against other implementations without importing
// the Go testing framework.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tarcieri/libristretto255/ristretto255"
)

var (
	verbose bool
	uniform bool
	count   int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ristretto255vectors: failed")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ristretto255vectors",
		Short: "Dump ristretto255 test vectors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(dumpCmd())
	return root
}

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Encode the first N small multiples of the generator, or Elligator2 images",
		RunE:  runDump,
	}
	cmd.Flags().BoolVar(&uniform, "uniform", false, "dump FromUniformBytes images instead of small multiples")
	cmd.Flags().IntVarP(&count, "count", "n", 16, "number of vectors to dump")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	if count < 0 {
		return fmt.Errorf("ristretto255vectors: count must be non-negative, got %d", count)
	}
	if uniform {
		return dumpUniform(cmd.OutOrStdout(), count)
	}
	return dumpSmallMultiples(cmd.OutOrStdout(), count)
}

// dumpSmallMultiples writes the canonical encodings of 0*G, 1*G, ..., (n-1)*G.
func dumpSmallMultiples(w io.Writer, n int) error {
	acc := ristretto255.NewElement().Zero()
	gen := ristretto255.NewElement().Base()
	for i := 0; i < n; i++ {
		log.Debug().Int("index", i).Msg("encoding small multiple")
		enc := acc.Encode(nil)
		if _, err := fmt.Fprintln(w, hex.EncodeToString(enc)); err != nil {
			return err
		}
		acc.Add(acc, gen)
	}
	return nil
}

// dumpUniform writes n Elligator2 images of a fixed, deterministic
// sequence of 64-byte inputs, so two independent runs produce the same
// vectors without needing a shared RNG seed.
func dumpUniform(w io.Writer, n int) error {
	var seed [64]byte
	for i := 0; i < n; i++ {
		log.Debug().Int("index", i).Msg("hashing uniform bytes")
		seed[0] = byte(i)
		seed[1] = byte(i >> 8)
		e, err := ristretto255.NewElement().FromUniformBytes(seed[:])
		if err != nil {
			return fmt.Errorf("ristretto255vectors: FromUniformBytes: %w", err)
		}
		if _, err := fmt.Fprintln(w, hex.EncodeToString(e.Encode(nil))); err != nil {
			return err
		}
	}
	return nil
}
