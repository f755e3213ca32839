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
	"sort"

	"go.uber.org/zap"
)

// ProverMap is the full, mutable side of the container. It runs a real hash
// map as an oracle for Get and, as a side effect, records the hints a
// VerifierMap later replays.
type ProverMap[K cmp.Ordered, V any] struct {
	oracle map[K]V

	storeArrayIndex        int
	insertObservedGetCount int
	getCount               int

	snapshots  [][]Entry[K, V]
	sortProofs [][]int
	access     []AccessEntry
	epochs     epochLog

	originalInput []Entry[K, V]

	trace *zap.SugaredLogger
}

// ProverOption configures a ProverMap at construction.
type ProverOption[K cmp.Ordered, V any] func(*ProverMap[K, V])

// WithTrace attaches a logger that receives one debug line per Insert/Get,
// mirroring the teacher's HistoryReaderV3.trace field.
func WithTrace[K cmp.Ordered, V any](l *zap.SugaredLogger) ProverOption[K, V] {
	return func(p *ProverMap[K, V]) { p.trace = l }
}

// NewProverMap returns an empty container with one pre-allocated empty
// snapshot, ready to accept inserts and gets.
func NewProverMap[K cmp.Ordered, V any](opts ...ProverOption[K, V]) *ProverMap[K, V] {
	p := &ProverMap[K, V]{
		oracle:     make(map[K]V),
		snapshots:  [][]Entry[K, V]{{}},
		sortProofs: [][]int{{}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Insert implements §4.2: it opens a new epoch if any get has occurred
// since the last insert, then appends to the current snapshot, the
// original-input array, and the oracle map.
func (p *ProverMap[K, V]) Insert(key K, val V) error {
	if _, exists := p.oracle[key]; exists {
		return ErrDuplicateKey
	}

	if p.getCount > p.insertObservedGetCount {
		p.storeArrayIndex++
		clone := make([]Entry[K, V], len(p.snapshots[p.storeArrayIndex-1]))
		copy(clone, p.snapshots[p.storeArrayIndex-1])
		p.snapshots = append(p.snapshots, clone)
		p.sortProofs = append(p.sortProofs, nil)
		p.epochs.push(p.getCount)
		p.insertObservedGetCount = p.getCount
	}

	cur := p.storeArrayIndex
	p.snapshots[cur] = append(p.snapshots[cur], Entry[K, V]{Key: key, Val: val})
	sort.Slice(p.snapshots[cur], func(i, j int) bool { return p.snapshots[cur][i].Key < p.snapshots[cur][j].Key })

	p.originalInput = append(p.originalInput, Entry[K, V]{Key: key, Val: val})

	proof, err := p.sortProof(cur)
	if err != nil {
		panic(err)
	}
	p.sortProofs[cur] = proof

	p.oracle[key] = val

	if p.trace != nil {
		p.trace.Debugw("insert", "key", key, "epoch", cur, "snapshot_len", len(p.snapshots[cur]))
	}
	return nil
}

// sortProof recomputes, via linear scan, the permutation mapping the sorted
// snapshot at epoch idx back onto originalInput. §9 explicitly accepts the
// O(n²) cost of this scan; the exported proof must be the exact permutation
// regardless of how it's computed.
func (p *ProverMap[K, V]) sortProof(idx int) ([]int, error) {
	snap := p.snapshots[idx]
	proof := make([]int, len(snap))
	used := make([]bool, len(p.originalInput))
	for i, e := range snap {
		found := -1
		for j, o := range p.originalInput {
			if used[j] {
				continue
			}
			if o.Key == e.Key {
				found = j
				used[j] = true
				break
			}
		}
		if found == -1 {
			return nil, &SortProofMismatchError{Key: e.Key}
		}
		proof[i] = found
	}
	return proof, nil
}

// Get implements §4.4: it increments get_count, consults the oracle map,
// runs the binary search over the current snapshot for the witness, and
// appends the resulting access entry. The oracle and the search are
// asserted to agree — divergence is a broken invariant, not a recoverable
// condition (§9 "hardened implementation").
func (p *ProverMap[K, V]) Get(key K) (V, bool) {
	p.getCount++
	val, found := p.oracle[key]

	access := binarySearch(p.snapshots[p.storeArrayIndex], key)
	p.access = append(p.access, access)

	if access.Matched != found {
		panic(&OracleDisagreementError{Key: key})
	}

	if p.trace != nil {
		p.trace.Debugw("get", "key", key, "found", found, "get_count", p.getCount)
	}
	return val, found
}

// ExportHints assembles the five hint fields §4.6 requires into a Hints
// value ready for encoding. The oracle map, insertObservedGetCount,
// originalInput and storeArrayIndex are deliberately excluded — they are
// prover-only bookkeeping, not hints.
func (p *ProverMap[K, V]) ExportHints() Hints[K, V] {
	snaps := make([][]Entry[K, V], len(p.snapshots))
	for i, s := range p.snapshots {
		snaps[i] = append([]Entry[K, V](nil), s...)
	}
	proofs := make([][]int, len(p.sortProofs))
	for i, s := range p.sortProofs {
		proofs[i] = append([]int(nil), s...)
	}
	return Hints[K, V]{
		GetCount:       p.getCount,
		Snapshots:      snaps,
		SortProofs:     proofs,
		AccessPattern:  append([]AccessEntry(nil), p.access...),
		EpochSwitchLog: append([]int(nil), p.epochs.switches...),
	}
}
