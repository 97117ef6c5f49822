package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadShardsPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	want := [][]byte{[]byte("zeroth"), []byte("first"), []byte("second")}
	paths := make([]string, len(want))
	for i, data := range want {
		paths[i] = filepath.Join(dir, "shard"+string(rune('0'+i)))
		require.NoError(t, os.WriteFile(paths[i], data, 0o644))
	}

	// Supply the paths in reverse to show order comes from the caller,
	// not the filesystem.
	got, err := ReadShards([]string{paths[2], paths[0], paths[1]})
	require.NoError(t, err)
	require.Equal(t, [][]byte{want[2], want[0], want[1]}, got)
}

func TestReadShardsMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok")
	require.NoError(t, os.WriteFile(ok, []byte("data"), 0o644))

	got, err := ReadShards([]string{ok, filepath.Join(dir, "missing")})
	require.Error(t, err)
	require.Nil(t, got)
}

func TestCreateFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	f, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}
