package decoder

import (
	"github.com/klauspost/reedsolomon"

	u "github.com/ectools/unfec/util"
)

// RS decodes shards produced by klauspost/reedsolomon-style encoders.
// Missing shards are left nil at their positions and regenerated from
// whichever k shards are present.
type RS struct {
	enc reedsolomon.Encoder
	k   int
	n   int
}

// NewRS creates the rs-scheme decoder for k required of n total shares.
func NewRS(k, n int) (*RS, error) {
	enc, err := reedsolomon.New(k, n-k)
	if err != nil {
		return nil, u.WrapErr("new rs", err)
	}
	return &RS{enc: enc, k: k, n: n}, nil
}

func (d *RS) Required() int { return d.k }
func (d *RS) Total() int    { return d.n }

func (d *RS) Decode(shares []Share) ([][]byte, error) {
	if err := checkShares(shares, d.k, d.n); err != nil {
		return nil, err
	}

	shards := make([][]byte, d.n)
	for _, s := range shares {
		shards[s.Number] = s.Data
	}
	if err := d.enc.ReconstructData(shards); err != nil {
		return nil, u.WrapErr("reconstruct", err)
	}
	return shards[:d.k], nil
}
