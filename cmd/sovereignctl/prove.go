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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/erigontech/sovereignmap"
	"github.com/erigontech/sovereignmap/opscript"
)

func newProveCmd() *cobra.Command {
	var scriptPath, outPath string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Run an operation script against a ProverMap and write its hints to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProve(scriptPath, outPath)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "path to the YAML operation script")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the encoded hint file to")
	cmd.MarkFlagRequired("script")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runProve(scriptPath, outPath string) error {
	runID := newRunID()
	logger, err := newLogger(flagLogFile, runID)
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	script, err := opscript.Load(scriptPath)
	if err != nil {
		return err
	}
	sugar.Infow("loaded script", "name", script.Name, "ops", len(script.Ops))

	compression, err := resolveCompression(flagCompression)
	if err != nil {
		return err
	}

	m := sovereignmap.NewProverMap[string, int64](sovereignmap.WithTrace[string, int64](sugar))
	for i, op := range script.Ops {
		switch op.Op {
		case opscript.KindInsert:
			if err := m.Insert(op.Key, op.Value); err != nil {
				return errors.Wrapf(err, "step %d: insert %q", i, op.Key)
			}
		case opscript.KindGet:
			val, found := m.Get(op.Key)
			sugar.Infow("get", "step", i, "key", op.Key, "found", found, "value", val)
		}
	}

	hints := m.ExportHints()
	encoded, err := sovereignmap.EncodeHints(hints, compression)
	if err != nil {
		return err
	}

	if err := writeFileLocked(outPath, encoded); err != nil {
		return err
	}

	printEpochTable(sovereignmap.Inspect(hints))
	fmt.Printf("wrote %d bytes (%d epochs, %d gets) to %s\n", len(encoded), len(hints.Snapshots), hints.GetCount, outPath)
	return nil
}

func writeFileLocked(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock for %s", path)
	}
	defer lock.Unlock()

	return os.WriteFile(path, data, 0o644)
}

func printEpochTable(rows []sovereignmap.EpochSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"epoch", "snapshot size", "switch after get#"})
	for _, r := range rows {
		switchAfter := "n/a"
		if r.SwitchAfter >= 0 {
			switchAfter = fmt.Sprintf("%d", r.SwitchAfter)
		}
		t.AppendRow(table.Row{r.Epoch, r.SnapshotSize, switchAfter})
	}
	t.Render()
}
