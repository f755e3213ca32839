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

package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/erigontech/sovereignmap"
)

func newInspectCmd() *cobra.Command {
	var inPath, format string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the per-epoch snapshot sizes and epoch-switch points of a hint file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(inPath, format)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "path to the encoded hint file to inspect")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	cmd.MarkFlagRequired("in")
	return cmd
}

func runInspect(inPath, format string) error {
	data, err := readFileLocked(inPath)
	if err != nil {
		return err
	}

	hints, err := sovereignmap.DecodeHints[string, int64](data)
	if err != nil {
		return err
	}
	rows := sovereignmap.Inspect(hints)

	switch format {
	case "json":
		out, err := jsoniter.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "table", "":
		printEpochTable(rows)
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
	return nil
}
