// Package codec orchestrates reconstruction of a file from erasure
// shards: precondition checks, share selection, decode delegation and
// assembly of the output stream.
package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/dustin/go-humanize"
	sha256 "github.com/minio/sha256-simd"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/ectools/unfec/decoder"
	fio "github.com/ectools/unfec/io"
	u "github.com/ectools/unfec/util"
)

// NoTruncate disables output truncation.
const NoTruncate int64 = -1

var (
	ErrArgumentMismatch    = errors.New("share count does not match index count")
	ErrInsufficientShares  = errors.New("not enough shares to reconstruct")
	ErrShareLengthMismatch = errors.New("shares differ in byte length")
	ErrChecksumMismatch    = errors.New("reconstructed data does not match checksum")
)

// DecodeError reports a failure surfaced by the decode primitive.
// Retrying cannot help: the inputs are deterministic.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

type Reconstructor struct {
	dec decoder.Decoder
	log zerolog.Logger
}

func NewReconstructor(dec decoder.Decoder, log zerolog.Logger) *Reconstructor {
	return &Reconstructor{dec: dec, log: log}
}

// Reconstruct turns the supplied shares into the data blocks of the
// original padded stream.
//
// When more than k shares are supplied, the first k in caller order are
// used and the rest discarded with an info notice. This matches the
// behavior of the encoders' companion tools; no attempt is made to
// prefer particular indices or to cross-check the surplus shares.
func (r *Reconstructor) Reconstruct(shares []decoder.Share) ([][]byte, error) {
	k := r.dec.Required()
	if len(shares) < k {
		return nil, xerrors.Errorf("need at least %d shares, have %d: %w",
			k, len(shares), ErrInsufficientShares)
	}
	if len(shares) > k {
		r.log.Info().
			Int("supplied", len(shares)).
			Int("used", k).
			Msg("more shares than needed, using the first k supplied")
		shares = shares[:k]
	}

	// The algebra works blockwise across shares, so every retained share
	// must have the same length.
	for _, s := range shares[1:] {
		if len(s.Data) != len(shares[0].Data) {
			return nil, xerrors.Errorf("share %d is %d bytes, share %d is %d bytes: %w",
				shares[0].Number, len(shares[0].Data), s.Number, len(s.Data),
				ErrShareLengthMismatch)
		}
	}

	blocks, err := r.dec.Decode(shares)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return blocks, nil
}

// WriteBlocks writes blocks to w in order. When size is not NoTruncate,
// writing stops after size bytes, taking a prefix of the final
// contributing block; trailing padding and unused blocks are dropped.
// Returns the number of bytes written.
func WriteBlocks(w io.Writer, blocks [][]byte, size int64) (int64, error) {
	var written int64
	for _, block := range blocks {
		if size != NoTruncate {
			remaining := size - written
			if remaining <= 0 {
				break
			}
			if int64(len(block)) > remaining {
				block = block[:remaining]
			}
		}
		if _, err := w.Write(block); err != nil {
			return written, u.WrapErr("write block", err)
		}
		written += int64(len(block))
	}
	return written, nil
}

// ReconstructFile rebuilds outPath from the shard files at paths, whose
// original indices are given position-for-position in indices. size is
// the exact pre-padding length of the original stream, or NoTruncate to
// keep the padded output verbatim. A non-empty sum is a SHA-256 digest
// the written output must match.
//
// The output file is created only once every prior step has succeeded;
// no partial file is left behind by a failed precondition or decode.
func (r *Reconstructor) ReconstructFile(paths []string, indices []int, outPath string, size int64, sum []byte) error {
	if len(paths) != len(indices) {
		return xerrors.Errorf("%d share paths, %d indices: %w",
			len(paths), len(indices), ErrArgumentMismatch)
	}

	bufs, err := fio.ReadShards(paths)
	if err != nil {
		return err
	}
	shares := make([]decoder.Share, len(bufs))
	for i, buf := range bufs {
		shares[i] = decoder.Share{Number: indices[i], Data: buf}
	}

	blocks, err := r.Reconstruct(shares)
	if err != nil {
		return err
	}

	f, err := fio.CreateFile(outPath)
	if err != nil {
		return err
	}
	h := sha256.New()
	written, err := WriteBlocks(io.MultiWriter(f, h), blocks, size)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return u.WrapErr("close output", err)
	}

	if len(sum) > 0 && !bytes.Equal(h.Sum(nil), sum) {
		return xerrors.Errorf("output digest %x, want %x: %w",
			h.Sum(nil), sum, ErrChecksumMismatch)
	}

	evt := r.log.Info().
		Str("output", outPath).
		Str("size", humanize.Bytes(uint64(written)))
	if size != NoTruncate {
		evt = evt.Int64("truncated_to", size)
	}
	evt.Msg("successfully reconstructed")
	return nil
}
