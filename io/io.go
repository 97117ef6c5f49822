package io

import (
	"os"

	u "github.com/ectools/unfec/util"
)

// ReadShards reads each shard file fully into memory, preserving the
// order of paths. The first unreadable file aborts the whole load; no
// file handle is held past its read.
func ReadShards(paths []string) ([][]byte, error) {
	bufs := make([][]byte, len(paths))
	for i, path := range paths {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, u.WrapErr("read shard", err)
		}
		bufs[i] = buf
	}
	return bufs, nil
}

// CreateFile creates or truncates the output file.
func CreateFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, u.WrapErr("create output", err)
	}
	return f, nil
}
