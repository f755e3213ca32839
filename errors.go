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
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by ProverMap.Insert when the key is already
// present.
// The core this package implements leaves duplicate-key behavior
// unspecified; this package treats it as a defined error rather than
// risking a snapshot the sort-proof can no longer account for (see
// DESIGN.md).
var ErrDuplicateKey = errors.New("sovereignmap: duplicate key")

// ErrNotLoaded reports that a VerifierMap has no imported hints. No function
// in this package returns it: a VerifierMap.Get issued before ImportHints
// panics with ReplayOverrunError (see NewVerifierMap).
var ErrNotLoaded = errors.New("sovereignmap: hints not imported")

// ErrHintChecksum is returned by ImportHints when the payload's checksum
// does not match its contents.
var ErrHintChecksum = errors.New("sovereignmap: hint checksum mismatch")

// ReplayOverrunError is panicked by VerifierMap.Get when more gets are
// issued than the prover recorded. The Get API has no error return, and
// this is a broken-invariant condition per the core's error-handling
// design, not a recoverable one.
type ReplayOverrunError struct {
	Requested int
	Recorded  int
}

func (e *ReplayOverrunError) Error() string {
	return fmt.Sprintf("sovereignmap: replay overrun: get %d requested, only %d recorded", e.Requested, e.Recorded)
}

// SortProofMismatchError is panicked by ProverMap.Insert when a sorted
// snapshot entry cannot be located in the original-input array. It
// indicates a broken invariant in the prover's own bookkeeping, not a
// caller error.
type SortProofMismatchError struct {
	Key any
}

func (e *SortProofMismatchError) Error() string {
	return fmt.Sprintf("sovereignmap: sort-proof mismatch: entry for key %v absent from original input", e.Key)
}

// OracleDisagreementError is panicked by ProverMap.Get when the hash-map
// oracle's answer disagrees with the binary search over the current
// snapshot. The two must always agree; divergence means the snapshot was
// built incorrectly.
type OracleDisagreementError struct {
	Key any
}

func (e *OracleDisagreementError) Error() string {
	return fmt.Sprintf("sovereignmap: oracle/snapshot disagreement for key %v", e.Key)
}

// ReplayKeyMismatchError is panicked by VerifierMap.Get when the supplied
// key does not match the key indexed by the recorded access entry. This
// hardening is recommended but not required by the core's design notes.
type ReplayKeyMismatchError struct {
	Requested any
	Recorded  any
}

func (e *ReplayKeyMismatchError) Error() string {
	return fmt.Sprintf("sovereignmap: replay key mismatch: caller asked for %v, access log recorded %v", e.Requested, e.Recorded)
}

// AccessOutOfRangeError is panicked by VerifierMap.Get when a recorded
// Match access entry indexes outside the current snapshot.
type AccessOutOfRangeError struct {
	Index int
	Len   int
}

func (e *AccessOutOfRangeError) Error() string {
	return fmt.Sprintf("sovereignmap: access entry index %d out of range for snapshot of length %d", e.Index, e.Len)
}
