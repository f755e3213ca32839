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

package sovereignmap

import (
	"cmp"
	"fmt"
)

// String reports the prover's current epoch, snapshot size and get count —
// the Go analogue of the original core's `println!("{:?}", sm)` dump.
func (p *ProverMap[K, V]) String() string {
	return fmt.Sprintf("ProverMap{epoch:%d snapshot_len:%d get_count:%d epochs:%d}",
		p.storeArrayIndex, len(p.snapshots[p.storeArrayIndex]), p.getCount, len(p.snapshots))
}

// String reports the verifier's replay progress.
func (v *VerifierMap[K, V]) String() string {
	return fmt.Sprintf("VerifierMap{state:%d epoch:%d get_count:%d/%d}",
		v.state, v.storeArrayIndex, v.currentGetCount, v.hints.GetCount)
}

// EpochSummary is one row of the per-epoch report Inspect builds.
type EpochSummary struct {
	Epoch        int
	SnapshotSize int
	SwitchAfter  int // get_count after which the NEXT epoch opened; -1 for the last epoch
}

// Inspect returns a per-epoch summary of hints, for the CLI's inspect
// subcommand and for debugging. It does not mutate h.
func Inspect[K cmp.Ordered, V any](h Hints[K, V]) []EpochSummary {
	rows := make([]EpochSummary, len(h.Snapshots))
	for i := range h.Snapshots {
		switchAfter := -1
		if i < len(h.EpochSwitchLog) {
			switchAfter = h.EpochSwitchLog[i]
		}
		rows[i] = EpochSummary{
			Epoch:        i,
			SnapshotSize: len(h.Snapshots[i]),
			SwitchAfter:  switchAfter,
		}
	}
	return rows
}
