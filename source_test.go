// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxrows_test

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlsxrows"
)

func readAll(t *testing.T, src xlsxrows.Source) []xlsxrows.Record {
	t.Helper()
	var recs []xlsxrows.Record
	for {
		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			return recs
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
}

func TestRecord(t *testing.T) {
	rec := xlsxrows.NewRecord([]string{"a", "b", "a"}, 1, "x")
	assert.Equal(t, []string{"a", "b"}, rec.Keys())
	v, ok := rec.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = rec.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = rec.Get("c")
	assert.False(t, ok)
	assert.Nil(t, rec[2].Value)
}

func TestCSVSource(t *testing.T) {
	src := xlsxrows.NewCSVSource(csv.NewReader(strings.NewReader("b,a\n1,x\n2,y\n")))
	header, err := src.Header()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, header)

	recs := readAll(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, xlsxrows.Record{{Name: "b", Value: "1"}, {Name: "a", Value: "x"}}, recs[0])
	assert.Equal(t, xlsxrows.Record{{Name: "b", Value: "2"}, {Name: "a", Value: "y"}}, recs[1])
}

func TestOpenCsv(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "semicolon.csv")
	require.NoError(t, os.WriteFile(fn, []byte("name;value\nfoo;1\nbar;2;extra\n"), 0o644))

	cr, err := xlsxrows.OpenCsv(fn, "utf-8")
	require.NoError(t, err)
	defer cr.Close()
	assert.Equal(t, ';', cr.Comma)

	src := xlsxrows.NewCSVSource(cr.Reader)
	row, err := src.ReadValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "1"}, row)
	row, err = src.ReadValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "2", "extra"}, row)
	_, err = src.ReadValues()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenCsvCharset(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "latin2.csv")
	// "név,érték\nőz,1\n" in ISO-8859-2
	require.NoError(t, os.WriteFile(fn, []byte("n\xe9v,\xe9rt\xe9k\n\xf5z,1\n"), 0o644))

	cr, err := xlsxrows.OpenCsv(fn, "iso-8859-2")
	require.NoError(t, err)
	defer cr.Close()
	recs := readAll(t, xlsxrows.NewCSVSource(cr.Reader))
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"név", "érték"}, recs[0].Keys())
	assert.Equal(t, "őz", recs[0][0].Value)

	_, err = xlsxrows.OpenCsv(fn, "no-such-charset")
	assert.Error(t, err)
}

func TestJSONSourceArray(t *testing.T) {
	src, err := xlsxrows.NewJSONSource(strings.NewReader(
		`[{"z":1.50,"a":"x","n":null},{"a":"y","z":2,"o":{"k":[1,2]},"b":true}]`))
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())

	recs := readAll(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, xlsxrows.Record{
		{Name: "z", Value: "1.50"},
		{Name: "a", Value: "x"},
		{Name: "n", Value: nil},
	}, recs[0])
	assert.Equal(t, xlsxrows.Record{
		{Name: "a", Value: "y"},
		{Name: "z", Value: "2"},
		{Name: "o", Value: `{"k":[1,2]}`},
		{Name: "b", Value: "true"},
	}, recs[1])
}

func TestJSONSourceLines(t *testing.T) {
	src, err := xlsxrows.NewJSONSource(strings.NewReader("{\"a\":\"1\"}\n\n{\"a\":\"2\",\"b\":\"<&>\"}\n"))
	require.NoError(t, err)
	recs := readAll(t, src)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"a", "b"}, recs[1].Keys())
	assert.Equal(t, "<&>", recs[1][1].Value)

	src, err = xlsxrows.NewJSONSource(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, readAll(t, src))
}

func TestJSONSourceInvalid(t *testing.T) {
	for _, s := range []string{`[1,2]`, `[{"a":1}`, `"x"`} {
		_, err := xlsxrows.NewJSONSource(strings.NewReader(s))
		assert.Error(t, err, s)
	}
}

type recordingWriter struct {
	header []string
	rows   []xlsxrows.Record
	failAt int
}

func (rw *recordingWriter) SetHeader(names []string) error {
	rw.header = names
	return nil
}

func (rw *recordingWriter) AddRow(rec xlsxrows.Record) error {
	if rw.failAt != 0 && len(rw.rows)+1 == rw.failAt {
		return xlsxrows.ErrTooManyRows
	}
	rw.rows = append(rw.rows, rec)
	return nil
}

func TestCopy(t *testing.T) {
	newSrc := func() xlsxrows.Source {
		return xlsxrows.NewCSVSource(csv.NewReader(strings.NewReader("a\n1\n2\n3\n")))
	}
	var rw recordingWriter
	n, err := xlsxrows.Copy(&rw, newSrc())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, rw.rows, 3)

	rw = recordingWriter{failAt: 2}
	n, err = xlsxrows.Copy(&rw, newSrc())
	assert.ErrorIs(t, err, xlsxrows.ErrTooManyRows)
	assert.Equal(t, 1, n)
}
