// Package decoder provides the erasure-decode primitive behind file
// reconstruction. Two schemes are implemented: fec (storj.io/infectious,
// the zfec-compatible Vandermonde systematic code) and rs
// (klauspost/reedsolomon).
package decoder

import (
	"golang.org/x/xerrors"
)

// A Share is one erasure shard paired with the index it had among the n
// shards originally produced.
type Share struct {
	Number int
	Data   []byte
}

// Decoder reconstructs the original stream from exactly k shares.
//
// Decode returns the k data blocks whose concatenation is the stream as
// the encoder saw it, block-alignment padding included. Malformed input
// (wrong share count, out-of-range or duplicate indices, unequal share
// lengths) is rejected with an error, never silently decoded.
type Decoder interface {
	Decode(shares []Share) ([][]byte, error)
	Required() int
	Total() int
}

// checkShares enforces the part of the Decode contract common to all
// schemes: exactly k shares, distinct indices, each in [0, n).
func checkShares(shares []Share, k, n int) error {
	if len(shares) != k {
		return xerrors.Errorf("need exactly %d shares, got %d", k, len(shares))
	}
	seen := make(map[int]bool, len(shares))
	for _, s := range shares {
		if s.Number < 0 || s.Number >= n {
			return xerrors.Errorf("share index %d out of range [0, %d)", s.Number, n)
		}
		if seen[s.Number] {
			return xerrors.Errorf("duplicate share index %d", s.Number)
		}
		seen[s.Number] = true
	}
	return nil
}
