package decoder

import (
	"storj.io/infectious"

	u "github.com/ectools/unfec/util"
)

// FEC decodes Vandermonde-style systematic Reed-Solomon shares, the
// scheme family used by zfec. Shares 0..k-1 are the original data blocks
// and shares k..n-1 carry parity.
type FEC struct {
	fec *infectious.FEC
}

// NewFEC creates the fec-scheme decoder for k required of n total shares.
func NewFEC(k, n int) (*FEC, error) {
	fec, err := infectious.NewFEC(k, n)
	if err != nil {
		return nil, u.WrapErr("new fec", err)
	}
	return &FEC{fec: fec}, nil
}

func (d *FEC) Required() int { return d.fec.Required() }
func (d *FEC) Total() int    { return d.fec.Total() }

func (d *FEC) Decode(shares []Share) ([][]byte, error) {
	k := d.fec.Required()
	if err := checkShares(shares, k, d.fec.Total()); err != nil {
		return nil, err
	}

	in := make([]infectious.Share, len(shares))
	for i, s := range shares {
		in[i] = infectious.Share{Number: s.Number, Data: s.Data}
	}
	out, err := d.fec.Decode(nil, in)
	if err != nil {
		return nil, u.WrapErr("fec decode", err)
	}

	// The decoded buffer is the padded original; hand it back as the k
	// data blocks it was split into.
	blockLen := len(out) / k
	blocks := make([][]byte, k)
	for i := range blocks {
		blocks[i] = out[i*blockLen : (i+1)*blockLen]
	}
	return blocks, nil
}
