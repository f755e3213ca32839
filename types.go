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

import "cmp"

// Entry is a single key/value pair as stored in a snapshot or the
// original-input array.
type Entry[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// AccessEntry is the per-Get witness appended to the access pattern: either
// the key was found at Index in the current snapshot (Matched == true), or
// it lies strictly between the snapshot positions Lo and Hi. Lo is -1 when
// the target precedes every key in the snapshot ("before first").
type AccessEntry struct {
	Matched bool
	Index   int
	Lo      int
	Hi      int
}

// beforeFirst is the sentinel low bound meaning "no predecessor exists in
// the snapshot." It must never collide with a legitimate index, hence -1
// rather than 0.
const beforeFirst = -1

func matchEntry(i int) AccessEntry {
	return AccessEntry{Matched: true, Index: i}
}

func missEntry(lo, hi int) AccessEntry {
	return AccessEntry{Matched: false, Lo: lo, Hi: hi}
}

// Map is the shared API surface of ProverMap and VerifierMap. Calling code
// written against Map can be run unmodified against either mode; only the
// construction and hint import/export differ.
type Map[K cmp.Ordered, V any] interface {
	// Insert adds key/val. ProverMap returns ErrDuplicateKey if key is
	// already present; VerifierMap does no duplicate check and returns nil.
	Insert(key K, val V) error
	// Get returns the value associated with key, and whether it was found.
	Get(key K) (V, bool)
}

// epochLog is the prover's bookkeeping for epoch-switch boundaries: an
// ascending sequence of get-counts after which an insert opened a new
// epoch. ProverMap produces it; VerifierMap consumes the exported copy in
// Hints.EpochSwitchLog.
type epochLog struct {
	switches []int
}

func (e *epochLog) push(getCount int) {
	e.switches = append(e.switches, getCount)
}
