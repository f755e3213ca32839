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

// ReplayState is the ZK-side state machine of §4.7.
type ReplayState int

const (
	// ReplayLoaded holds after ImportHints and before the first Get.
	ReplayLoaded ReplayState = iota
	// ReplayReplaying holds from the first Get until get_count gets have
	// been issued.
	ReplayReplaying
	// ReplayExhausted holds once every recorded get has been replayed; any
	// further Get is fatal.
	ReplayExhausted
)

// VerifierMap is the ZK-side replay of a ProverMap: it performs no hashing,
// sorting, or searching. Every Get is answered by indexing directly into
// the imported snapshots at the position the access log already recorded.
type VerifierMap[K cmp.Ordered, V any] struct {
	hints Hints[K, V]
	state ReplayState

	currentGetCount int
	storeArrayIndex int
	epochConsumed   int

	originalInput []Entry[K, V]
}

// NewVerifierMap returns a container with no hints loaded. ImportHints must
// be called before the first Get if the paired prover run performed any
// gets; if it performed none, get_count is zero and the first Get (if any)
// is correctly rejected as an overrun without requiring a no-op import.
func NewVerifierMap[K cmp.Ordered, V any]() *VerifierMap[K, V] {
	return &VerifierMap[K, V]{state: ReplayLoaded}
}

// ImportHints decodes data (as produced by ProverMap.ExportHints + EncodeHints)
// and installs it as this verifier's replay hints. store_array_index
// starts at zero by construction: a fresh VerifierMap only ever advances
// it via the epoch log during replay.
func (v *VerifierMap[K, V]) ImportHints(data []byte) error {
	h, err := DecodeHints[K, V](data)
	if err != nil {
		return err
	}
	v.hints = h
	v.state = ReplayLoaded
	v.currentGetCount = 0
	v.storeArrayIndex = 0
	v.epochConsumed = 0
	return nil
}

// Insert implements §4.3: in ZK mode inserting only grows the
// original-input array; no snapshot, sort, or map work happens.
func (v *VerifierMap[K, V]) Insert(key K, val V) error {
	v.originalInput = append(v.originalInput, Entry[K, V]{Key: key, Val: val})
	return nil
}

// Get implements §4.5, the replay engine. key is accepted only so caller
// code is identical across modes; it is not used to locate the result,
// though it is checked against the indexed entry on a Match to fail closed
// on a misaligned replay (§9, recommended hardening).
func (v *VerifierMap[K, V]) Get(key K) (V, bool) {
	if v.state == ReplayExhausted {
		panic(&ReplayOverrunError{Requested: v.currentGetCount + 1, Recorded: v.hints.GetCount})
	}

	v.currentGetCount++
	if v.currentGetCount > v.hints.GetCount {
		panic(&ReplayOverrunError{Requested: v.currentGetCount, Recorded: v.hints.GetCount})
	}
	v.state = ReplayReplaying

	for {
		boundary, ok := v.hints.nextBoundary(v.epochConsumed)
		if !ok || v.currentGetCount <= boundary {
			break
		}
		v.storeArrayIndex++
		v.epochConsumed++
	}

	access := v.hints.AccessPattern[v.currentGetCount-1]

	var zero V
	var result V
	var found bool
	switch {
	case access.Matched:
		snap := v.hints.Snapshots[v.storeArrayIndex]
		if access.Index < 0 || access.Index >= len(snap) {
			panic(&AccessOutOfRangeError{Index: access.Index, Len: len(snap)})
		}
		entry := snap[access.Index]
		if entry.Key != key {
			panic(&ReplayKeyMismatchError{Requested: key, Recorded: entry.Key})
		}
		result, found = entry.Val, true
	default:
		result, found = zero, false
	}

	if v.currentGetCount == v.hints.GetCount {
		v.state = ReplayExhausted
	}
	return result, found
}

// State reports the replay state machine's current value.
func (v *VerifierMap[K, V]) State() ReplayState { return v.state }
