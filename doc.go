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

// Package sovereignmap implements a dual-mode associative container for
// zero-knowledge circuits.
//
// A ProverMap runs as a regular in-memory map and, as a side effect of every
// Insert and Get, records a stream of hints witnessing each read. A
// VerifierMap consumes that same hint stream inside a constrained (ZK)
// execution environment and reproduces the prover's Get results by replaying
// the recorded access pattern against the recorded sorted snapshots — using
// only direct indexing into those snapshots, never a hash map or a search.
//
// Callers of a ProverMap and callers of a VerifierMap must issue identical
// sequences of Insert/Get calls, in the same order, with the same arguments,
// for replay to succeed. The two types share the Map interface so calling
// code can be written once and instantiated against either.
package sovereignmap
