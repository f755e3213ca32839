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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/erigontech/sovereignmap"
	"github.com/erigontech/sovereignmap/opscript"
)

func newVerifyCmd() *cobra.Command {
	var scriptPath, inPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Replay an operation script against a VerifierMap loaded from a hint file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(scriptPath, inPath)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "path to the same YAML operation script used to prove")
	cmd.Flags().StringVar(&inPath, "in", "", "path to the encoded hint file to load")
	cmd.MarkFlagRequired("script")
	cmd.MarkFlagRequired("in")
	return cmd
}

func runVerify(scriptPath, inPath string) error {
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

	data, err := readFileLocked(inPath)
	if err != nil {
		return err
	}

	m := sovereignmap.NewVerifierMap[string, int64]()
	if err := m.ImportHints(data); err != nil {
		return errors.Wrap(err, "import hints")
	}
	sugar.Infow("loaded hints", "bytes", len(data))

	gets := 0
	for i, op := range script.Ops {
		switch op.Op {
		case opscript.KindInsert:
			_ = m.Insert(op.Key, op.Value)
		case opscript.KindGet:
			val, found := m.Get(op.Key)
			gets++
			sugar.Infow("replayed get", "step", i, "key", op.Key, "found", found, "value", val)
			fmt.Printf("get(%q) => found=%v value=%v\n", op.Key, found, val)
		}
	}

	fmt.Printf("replayed %d gets, final state=%v\n", gets, m.State())
	return nil
}

func readFileLocked(path string) ([]byte, error) {
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	locked, err := lock.TryRLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire read lock for %s", path)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}
