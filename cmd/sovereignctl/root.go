// This file is part of sovereignmap.
//
// sovereignmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sovereignmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sovereignmap. If not, see <http://www.gnu.org/licenses/>.

// Command sovereignctl is a thin demonstration harness around the
// sovereignmap library: it drives a YAML operation script through a
// ProverMap or a VerifierMap and moves the resulting hint file between
// them. It is explicitly out of the core container's scope (§1) — the core
// is the library, not this CLI.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/erigontech/sovereignmap"
)

var (
	flagLogFile     string
	flagCompression string
)

func resolveCompression(s string) (sovereignmap.Compression, error) {
	switch s {
	case "", "none":
		return sovereignmap.CompressionNone, nil
	case "zstd":
		return sovereignmap.CompressionZstd, nil
	case "snappy":
		return sovereignmap.CompressionSnappy, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, zstd, or snappy)", s)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sovereignctl",
		Short: "Drive a sovereignmap prover or verifier through a scripted operation sequence",
	}
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "rotate structured logs into this file in addition to stderr")
	root.PersistentFlags().StringVar(&flagCompression, "compression", "zstd", "hint compression backend: none, zstd, or snappy")

	root.AddCommand(newProveCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newInspectCmd())
	return root
}

func newRunID() string { return uuid.NewString() }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
