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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/sovereignmap"
)

func sampleHints() sovereignmap.Hints[string, int] {
	prover := sovereignmap.NewProverMap[string, int]()
	_ = prover.Insert("rohan", 10)
	_ = prover.Insert("philippe", 20)
	_, _ = prover.Get("rohan")
	_ = prover.Insert("kevin", 30)
	_, _ = prover.Get("philippe")
	_, _ = prover.Get("nope")
	return prover.ExportHints()
}

func TestHintsRoundTripAllCompressionBackends(t *testing.T) {
	h := sampleHints()
	for _, c := range []sovereignmap.Compression{
		sovereignmap.CompressionNone,
		sovereignmap.CompressionZstd,
		sovereignmap.CompressionSnappy,
	} {
		encoded, err := sovereignmap.EncodeHints(h, c)
		require.NoError(t, err)

		got, err := sovereignmap.DecodeHints[string, int](encoded)
		require.NoError(t, err)
		if diff := cmp.Diff(h, got); diff != "" {
			t.Fatalf("compression %d: round-trip mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestHintsChecksumDetectsCorruption(t *testing.T) {
	h := sampleHints()
	encoded, err := sovereignmap.EncodeHints(h, sovereignmap.CompressionNone)
	require.NoError(t, err)

	corrupted := append([]byte(nil), encoded...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err = sovereignmap.DecodeHints[string, int](corrupted)
	require.ErrorIs(t, err, sovereignmap.ErrHintChecksum)
}

func TestHintsBase58RoundTrip(t *testing.T) {
	h := sampleHints()
	encoded, err := sovereignmap.EncodeHints(h, sovereignmap.CompressionZstd)
	require.NoError(t, err)

	text := sovereignmap.ToBase58(encoded)
	require.NotContains(t, text, " ")

	back, err := sovereignmap.FromBase58(text)
	require.NoError(t, err)
	require.Equal(t, encoded, back)
}

func TestDecodeHintsRejectsShortPayload(t *testing.T) {
	_, err := sovereignmap.DecodeHints[string, int]([]byte{1, 2, 3})
	require.Error(t, err)
}
