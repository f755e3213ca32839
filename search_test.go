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
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func snap(keys ...int) []Entry[int, string] {
	out := make([]Entry[int, string], len(keys))
	for i, k := range keys {
		out[i] = Entry[int, string]{Key: k, Val: "v"}
	}
	return out
}

func TestBinarySearchEmpty(t *testing.T) {
	got := binarySearch(snap(), 5)
	require.Equal(t, missEntry(-1, 0), got)
}

func TestBinarySearchMatch(t *testing.T) {
	s := snap(1, 3, 5, 7, 9)
	for i, k := range []int{1, 3, 5, 7, 9} {
		got := binarySearch(s, k)
		require.Equal(t, matchEntry(i), got, "key %d", k)
	}
}

func TestBinarySearchMissBeforeFirst(t *testing.T) {
	s := snap(3, 5, 7)
	got := binarySearch(s, 1)
	require.Equal(t, missEntry(-1, 0), got)
}

func TestBinarySearchMissAfterLast(t *testing.T) {
	s := snap(3, 5, 7)
	got := binarySearch(s, 9)
	require.Equal(t, missEntry(2, 3), got)
}

func TestBinarySearchMissBetween(t *testing.T) {
	s := snap(3, 5, 7, 9)
	got := binarySearch(s, 6)
	require.Equal(t, missEntry(1, 2), got)
}

func TestBinarySearchSingleElement(t *testing.T) {
	s := snap(5)
	require.Equal(t, matchEntry(0), binarySearch(s, 5))
	require.Equal(t, missEntry(-1, 0), binarySearch(s, 1))
	require.Equal(t, missEntry(0, 1), binarySearch(s, 9))
}

// TestPropertySearchCorrectness covers P7: for any sorted, duplicate-free
// snapshot and any target, binary search returns Match(i) iff
// snapshot[i].Key == target, else Miss(lo,hi) with hi-lo in {1,2} and the
// bounds straddling target whenever they exist.
func TestPropertySearchCorrectness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.SliceOfNDistinct(rapid.IntRange(0, 500), 0, 30, func(k int) int { return k }).Draw(rt, "keys")
		sort.Ints(raw)
		s := make([]Entry[int, int], len(raw))
		for i, k := range raw {
			s[i] = Entry[int, int]{Key: k, Val: k * 10}
		}
		target := rapid.IntRange(-5, 505).Draw(rt, "target")

		got := binarySearch(s, target)

		matchIdx := -1
		for i, e := range s {
			if e.Key == target {
				matchIdx = i
				break
			}
		}

		if matchIdx >= 0 {
			if !got.Matched || got.Index != matchIdx {
				rt.Fatalf("target %d: want Match(%d), got %+v", target, matchIdx, got)
			}
			return
		}

		if got.Matched {
			rt.Fatalf("target %d: want Miss, got Match(%d)", target, got.Index)
		}
		if len(s) == 0 {
			if got.Lo != -1 || got.Hi != 0 {
				rt.Fatalf("empty snapshot: want Miss(-1,0), got %+v", got)
			}
			return
		}
		if got.Hi-got.Lo != 1 && got.Hi-got.Lo != 2 {
			rt.Fatalf("target %d: Miss bounds %d,%d not adjacent/bracketing", target, got.Lo, got.Hi)
		}
		if got.Lo >= 0 && s[got.Lo].Key >= target {
			rt.Fatalf("target %d: Lo bound %d (key %d) not < target", target, got.Lo, s[got.Lo].Key)
		}
		if got.Hi < len(s) && s[got.Hi].Key <= target {
			rt.Fatalf("target %d: Hi bound %d (key %d) not > target", target, got.Hi, s[got.Hi].Key)
		}
	})
}
