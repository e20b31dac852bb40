// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package archive bundles named byte blobs into one zip file.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Archive collects entries and writes them out as one file.
type Archive interface {
	AddEntry(name string, data []byte) error
	WriteTo(w io.Writer) (int64, error)
	WriteFile(path string) error
}

var ErrDuplicateEntry = errors.New("duplicate entry")

var _ = Archive((*Zip)(nil))

type entry struct {
	name string
	data []byte
}

// Zip is an in-memory Archive producing a zip container.
//
// Entries are written in the order they were added, with zero
// modification times, so the same entries always give the same bytes.
type Zip struct {
	entries []entry
	names   map[string]struct{}
	level   int
}

// NewZip returns an empty Zip compressing with the given flate level.
// Level 0 means flate.DefaultCompression.
func NewZip(level int) *Zip {
	if level == 0 {
		level = flate.DefaultCompression
	}
	return &Zip{level: level, names: make(map[string]struct{})}
}

// AddEntry adds a named entry. The data is not copied.
func (z *Zip) AddEntry(name string, data []byte) error {
	if _, ok := z.names[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateEntry)
	}
	z.names[name] = struct{}{}
	z.entries = append(z.entries, entry{name: name, data: data})
	return nil
}

// Len returns the number of entries.
func (z *Zip) Len() int { return len(z.entries) }

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the zip archive to w.
func (z *Zip) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	level := z.level
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	for _, e := range z.entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate})
		if err != nil {
			return cw.n, fmt.Errorf("%s: %w", e.name, err)
		}
		if _, err = fw.Write(e.data); err != nil {
			return cw.n, fmt.Errorf("%s: %w", e.name, err)
		}
	}
	err := zw.Close()
	return cw.n, err
}

// WriteFile writes the archive to a temporary file next to path,
// then renames it to path. On error no file is left at path.
func (z *Zip) WriteFile(path string) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	fh, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(fh, 1<<16)
	if _, err = z.WriteTo(bw); err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = fh.Sync()
	}
	if closeErr := fh.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
	}
	return err
}
