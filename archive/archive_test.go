// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package archive_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlsxrows/archive"
)

func newZip(t *testing.T) *archive.Zip {
	t.Helper()
	z := archive.NewZip(0)
	require.NoError(t, z.AddEntry("b.txt", []byte("bbb")))
	require.NoError(t, z.AddEntry("a/a.txt", bytes.Repeat([]byte("a"), 10000)))
	require.NoError(t, z.AddEntry("empty", nil))
	return z
}

func unzip(t *testing.T, data []byte) ([]string, map[string][]byte) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	contents := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		names = append(names, f.Name)
		contents[f.Name] = b
	}
	return names, contents
}

func TestZipWriteTo(t *testing.T) {
	z := newZip(t)
	assert.Equal(t, 3, z.Len())

	var buf bytes.Buffer
	n, err := z.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Less(t, buf.Len(), 10000)

	names, contents := unzip(t, buf.Bytes())
	assert.Equal(t, []string{"b.txt", "a/a.txt", "empty"}, names)
	assert.Equal(t, "bbb", string(contents["b.txt"]))
	assert.Len(t, contents["a/a.txt"], 10000)
	assert.Empty(t, contents["empty"])
}

func TestZipDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := newZip(t).WriteTo(&a)
	require.NoError(t, err)
	_, err = newZip(t).WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestZipDuplicate(t *testing.T) {
	z := archive.NewZip(0)
	require.NoError(t, z.AddEntry("x", nil))
	assert.ErrorIs(t, z.AddEntry("x", []byte("again")), archive.ErrDuplicateEntry)
	assert.Equal(t, 1, z.Len())
}

func TestZipWriteFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "out.zip")
	require.NoError(t, newZip(t).WriteFile(fn))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	names, _ := unzip(t, data)
	assert.Len(t, names, 3)

	des, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, des, 1, "temporary file left behind")
	assert.Equal(t, "out.zip", des[0].Name())

	// overwrite
	z := archive.NewZip(9)
	require.NoError(t, z.AddEntry("only", []byte("one")))
	require.NoError(t, z.WriteFile(fn))
	data, err = os.ReadFile(fn)
	require.NoError(t, err)
	names, _ = unzip(t, data)
	assert.Equal(t, []string{"only"}, names)
}

func TestZipWriteFileMissingDir(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "missing", "out.zip")
	err := newZip(t).WriteFile(fn)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(fn)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
