package util

import (
	"encoding/hex"

	"golang.org/x/xerrors"
)

func WrapErr(msg string, err error) error {
	return xerrors.Errorf("%s: %w", msg, err)
}

// ParseDigest decodes a hex-encoded digest and checks it is exactly
// size bytes long.
func ParseDigest(s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, WrapErr("parse digest", err)
	}
	if len(b) != size {
		return nil, xerrors.Errorf("digest is %d bytes, want %d", len(b), size)
	}
	return b, nil
}
