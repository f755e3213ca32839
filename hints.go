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
	"bytes"
	"cmp"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// hintsWireVersion is bumped whenever the on-wire layout of Hints changes in
// a way that isn't handled by the CBOR codec alone (e.g. the header
// format below).
const hintsWireVersion = 1

// Compression selects the backend EncodeHints uses to shrink
// the CBOR payload before it's checksummed and, optionally, base58-wrapped.
type Compression byte

const (
	// CompressionNone stores the CBOR payload as-is.
	CompressionNone Compression = iota
	// CompressionZstd uses klauspost/compress's zstd implementation.
	CompressionZstd
	// CompressionSnappy uses golang/snappy for lower-latency, lower-ratio
	// compression.
	CompressionSnappy
)

const hintsHeaderLen = 1 + 1 + 8 // version + compression tag + xxhash64

// Hints is the exact 5-tuple §4.6 specifies: get_count, the snapshot
// sequence, the per-snapshot sort-proofs, the full access pattern, and the
// epoch-switch log. Nothing else belongs in it — the oracle map,
// insert_observed_get_count, original_input_array, current_get_count and
// store_array_index are prover/verifier-local bookkeeping, not hints.
type Hints[K cmp.Ordered, V any] struct {
	GetCount       int
	Snapshots      [][]Entry[K, V]
	SortProofs     [][]int
	AccessPattern  []AccessEntry
	EpochSwitchLog []int
}

// nextBoundary returns the consumed-th (0-indexed) epoch-switch boundary,
// and whether one exists at that position.
func (h Hints[K, V]) nextBoundary(consumed int) (int, bool) {
	if consumed >= len(h.EpochSwitchLog) {
		return 0, false
	}
	return h.EpochSwitchLog[consumed], true
}

var cborHandle = &codec.CborHandle{}

// EncodeHints serializes h (typically the value ProverMap.ExportHints
// returns) with the given compression backend into a byte string. The
// format is
// [version(1) | compression(1) | xxhash64(8) | compressed-CBOR...]; the
// checksum covers the (possibly compressed) payload so a corrupted
// transport is caught before decompression or CBOR decoding is attempted.
func EncodeHints[K cmp.Ordered, V any](h Hints[K, V], c Compression) ([]byte, error) {
	var raw bytes.Buffer
	enc := codec.NewEncoder(&raw, cborHandle)
	if err := enc.Encode(h); err != nil {
		return nil, errors.Wrap(err, "sovereignmap: encode hints")
	}

	payload, err := compressPayload(raw.Bytes(), c)
	if err != nil {
		return nil, errors.Wrap(err, "sovereignmap: compress hints")
	}

	out := make([]byte, hintsHeaderLen+len(payload))
	out[0] = hintsWireVersion
	out[1] = byte(c)
	binary.LittleEndian.PutUint64(out[2:10], xxhash.Sum64(payload))
	copy(out[hintsHeaderLen:], payload)
	return out, nil
}

// DecodeHints reverses EncodeHints, verifying the checksum before
// attempting decompression or CBOR decoding.
func DecodeHints[K cmp.Ordered, V any](data []byte) (Hints[K, V], error) {
	var zero Hints[K, V]
	if len(data) < hintsHeaderLen {
		return zero, errors.New("sovereignmap: hint payload too short")
	}
	if data[0] != hintsWireVersion {
		return zero, errors.Errorf("sovereignmap: unsupported hint wire version %d", data[0])
	}
	c := Compression(data[1])
	wantSum := binary.LittleEndian.Uint64(data[2:10])
	payload := data[hintsHeaderLen:]
	if xxhash.Sum64(payload) != wantSum {
		return zero, ErrHintChecksum
	}

	raw, err := decompressPayload(payload, c)
	if err != nil {
		return zero, errors.Wrap(err, "sovereignmap: decompress hints")
	}

	var h Hints[K, V]
	dec := codec.NewDecoder(bytes.NewReader(raw), cborHandle)
	if err := dec.Decode(&h); err != nil {
		return zero, errors.Wrap(err, "sovereignmap: decode hints")
	}
	return h, nil
}

// ToBase58 wraps an encoded hint string for embedding in a non-whitespace
// carrier (a log line, a config value), per §4.6.
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 reverses ToBase58.
func FromBase58(s string) ([]byte, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "sovereignmap: base58 decode")
	}
	return data, nil
}

func compressPayload(raw []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return raw, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	case CompressionSnappy:
		return snappy.Encode(nil, raw), nil
	default:
		return nil, errors.Errorf("sovereignmap: unknown compression tag %d", c)
	}
}

func decompressPayload(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, err
		}
		return out, nil
	case CompressionSnappy:
		out, err := snappy.Decode(nil, data)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, errors.Errorf("sovereignmap: unknown compression tag %d", c)
	}
}
