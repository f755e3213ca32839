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

package sovereignmap_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/erigontech/sovereignmap"
)

type propStep struct {
	isInsert bool
	key      string
	val      int
}

func genSteps(t *rapid.T) []propStep {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	n := rapid.IntRange(1, 40).Draw(t, "n")
	used := make(map[string]bool, len(pool))
	steps := make([]propStep, 0, n)
	for i := 0; i < n; i++ {
		key := rapid.SampledFrom(pool).Draw(t, "key")
		if !used[key] && rapid.Bool().Draw(t, "doInsert") {
			used[key] = true
			steps = append(steps, propStep{isInsert: true, key: key, val: rapid.IntRange(0, 1000).Draw(t, "val")})
		} else {
			steps = append(steps, propStep{key: key})
		}
	}
	return steps
}

type propResult struct {
	val int
	ok  bool
}

func runProver(t *rapid.T, steps []propStep) (sovereignmap.Hints[string, int], []propResult) {
	prover := sovereignmap.NewProverMap[string, int]()
	var results []propResult
	for _, s := range steps {
		if s.isInsert {
			if err := prover.Insert(s.key, s.val); err != nil {
				t.Fatalf("unexpected insert error for distinct key %q: %v", s.key, err)
			}
			continue
		}
		v, ok := prover.Get(s.key)
		results = append(results, propResult{v, ok})
	}
	return prover.ExportHints(), results
}

// TestPropertyEquivalence covers P1: for any sequence of ops with distinct
// insert keys, a fresh verifier loaded from the prover's hints returns the
// same value at every get, in order.
func TestPropertyEquivalence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := genSteps(rt)
		hints, proverResults := runProver(rt, steps)

		encoded, err := sovereignmap.EncodeHints(hints, sovereignmap.CompressionZstd)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}

		verifier := sovereignmap.NewVerifierMap[string, int]()
		if err := verifier.ImportHints(encoded); err != nil {
			rt.Fatalf("import: %v", err)
		}

		var verifierResults []propResult
		for _, s := range steps {
			if s.isInsert {
				_ = verifier.Insert(s.key, s.val)
				continue
			}
			v, ok := verifier.Get(s.key)
			verifierResults = append(verifierResults, propResult{v, ok})
		}

		if len(proverResults) != len(verifierResults) {
			rt.Fatalf("result count mismatch: prover %d, verifier %d", len(proverResults), len(verifierResults))
		}
		for i := range proverResults {
			if proverResults[i] != verifierResults[i] {
				rt.Fatalf("get %d diverged: prover %+v, verifier %+v", i, proverResults[i], verifierResults[i])
			}
		}
	})
}

// TestPropertyIdempotentGets covers P6: repeating the same get twice against
// an unchanged snapshot yields identical results and identical access
// entries.
func TestPropertyIdempotentGets(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := genSteps(rt)
		target := rapid.SampledFrom([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}).Draw(rt, "target")

		prover := sovereignmap.NewProverMap[string, int]()
		for _, s := range steps {
			if s.isInsert {
				_ = prover.Insert(s.key, s.val)
			}
		}

		v1, ok1 := prover.Get(target)
		v2, ok2 := prover.Get(target)
		if v1 != v2 || ok1 != ok2 {
			rt.Fatalf("repeated get(%q) diverged: (%v,%v) vs (%v,%v)", target, v1, ok1, v2, ok2)
		}

		hints := prover.ExportHints()
		n := len(hints.AccessPattern)
		if n < 2 || hints.AccessPattern[n-1] != hints.AccessPattern[n-2] {
			rt.Fatalf("repeated get(%q) produced different access entries: %+v vs %+v", target, hints.AccessPattern[n-2], hints.AccessPattern[n-1])
		}
	})
}
