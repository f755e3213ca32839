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

// binarySearch locates target within a snapshot sorted strictly ascending
// by key. It returns a Match access entry when found, otherwise a Miss
// whose Lo/Hi bracket the hypothetical insertion point. Lo is beforeFirst
// when target precedes every entry.
//
// snapshot of length 0 returns Miss(beforeFirst, 0) directly, without
// entering the search loop.
func binarySearch[K cmp.Ordered, V any](snapshot []Entry[K, V], target K) AccessEntry {
	n := len(snapshot)
	if n == 0 {
		return missEntry(beforeFirst, 0)
	}

	lo, hi := 0, n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case snapshot[mid].Key == target:
			return matchEntry(mid)
		case snapshot[mid].Key < target:
			lo = mid + 1
		default:
			if mid == 0 {
				// target precedes snapshot[0]; there is no predecessor.
				return missEntry(beforeFirst, 0)
			}
			hi = mid - 1
		}
	}
	return missEntry(lo-1, lo)
}
