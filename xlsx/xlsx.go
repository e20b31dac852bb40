// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

//go:generate qtc -file=blobs.qtpl

// Package xlsx writes records into a single-sheet xlsx file.
package xlsx

import (
	"fmt"
	"io"
	"log/slog"

	qt "github.com/valyala/quicktemplate"

	"github.com/UNO-SOFT/xlsxrows"
	"github.com/UNO-SOFT/xlsxrows/archive"
)

var _ = (xlsxrows.RowWriter)((*Writer)(nil))

// Options of the Writer. The zero value is usable.
type Options struct {
	// Logger receives debug messages. Nil discards them.
	Logger *slog.Logger
	// Strict makes AddRow fail on records with missing or unknown fields,
	// instead of rendering missing fields empty and ignoring unknown ones.
	Strict bool
	// CompressionLevel is the flate level of the archive; 0 is the default level.
	CompressionLevel int
	// NewArchive returns the archive to pack into. Defaults to archive.NewZip.
	NewArchive func() archive.Archive
}

// Writer collects rows and packs them into an xlsx archive.
//
// The first row (or SetHeader) fixes the column order for all the rows after.
//
// This writer collects everything in memory, so big sheets may impose problems.
// It is not safe for concurrent use, and must not be used after a successful Pack.
type Writer struct {
	opts   Options
	logger *slog.Logger

	header     []string
	columns    map[string]int
	haveHeader bool

	strings xlsxrows.StringTable
	labels  xlsxrows.ColumnLabels

	row    int
	rows   [][]byte
	packed bool

	cells  []any
	filled []bool
}

// NewWriter returns a new, empty Writer.
func NewWriter(opts Options) *Writer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil)) // slog.DiscardHandler requires Go 1.24
	}
	return &Writer{opts: opts, logger: logger}
}

// Write adds all the records to a new Writer and packs it to path.
func Write(path string, recs []xlsxrows.Record, opts Options) error {
	w := NewWriter(opts)
	for i, rec := range recs {
		if err := w.AddRow(rec); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return w.Pack(path)
}

// Rows returns the number of rows so far, including the header row.
func (w *Writer) Rows() int { return w.row }

// Columns returns the number of columns, 0 before the header is set.
func (w *Writer) Columns() int { return len(w.header) }

// Header returns the column names. The slice must not be modified.
func (w *Writer) Header() []string { return w.header }

// Dimensions returns the used range of the sheet, such as "A1:C5".
// An empty sheet is "A1:A1".
func (w *Writer) Dimensions() string {
	return "A1:" + w.labels.Address(w.row, len(w.header))
}

// SetHeader fixes the column order, and writes the header row.
//
// It returns xlsxrows.ErrHeadersSet if the header has already been set,
// explicitly or by AddRow.
func (w *Writer) SetHeader(names []string) error {
	if w.packed {
		return xlsxrows.ErrPacked
	}
	if w.haveHeader {
		return xlsxrows.ErrHeadersSet
	}
	if len(names) > xlsxrows.MaxColumnCount {
		return fmt.Errorf("%d: %w", len(names), xlsxrows.ErrTooManyColumns)
	}
	w.header = append(make([]string, 0, len(names)), names...)
	w.columns = make(map[string]int, len(names))
	for i, nm := range w.header {
		if _, ok := w.columns[nm]; !ok {
			w.columns[nm] = i
		}
	}
	w.haveHeader = true
	w.cells = make([]any, len(names))
	w.filled = make([]bool, len(names))

	w.row++
	w.appendFragment(func(qw *qt.Writer) {
		for i, nm := range w.header {
			streamstringCell(qw, w.strings.Intern(nm), w.labels.Address(w.row, i+1))
		}
	})
	w.logger.Debug("header", "columns", w.header)
	return nil
}

// AddRow adds a record as a row.
//
// On the first call without SetHeader, the record's keys become the header.
// Values are placed by the header, missing keys render as empty cells,
// and unknown keys are ignored (unless Options.Strict is set).
func (w *Writer) AddRow(rec xlsxrows.Record) error {
	if w.packed {
		return xlsxrows.ErrPacked
	}
	if !w.haveHeader {
		if err := w.SetHeader(rec.Keys()); err != nil {
			return err
		}
	}
	if w.row >= xlsxrows.MaxRowCount {
		return xlsxrows.ErrTooManyRows
	}
	for i := range w.cells {
		w.cells[i], w.filled[i] = nil, false
	}
	for _, f := range rec {
		i, ok := w.columns[f.Name]
		if !ok {
			if w.opts.Strict {
				return &xlsxrows.FieldError{Row: w.row + 1, Field: f.Name, Err: xlsxrows.ErrUnknownField}
			}
			continue
		}
		if w.filled[i] {
			continue
		}
		w.cells[i], w.filled[i] = f.Value, true
	}
	if w.opts.Strict {
		for i, ok := range w.filled {
			if !ok && w.columns[w.header[i]] == i {
				return &xlsxrows.FieldError{Row: w.row + 1, Field: w.header[i], Err: xlsxrows.ErrMissingField}
			}
		}
	}
	w.appendRow(w.cells)
	return nil
}

// AppendRow adds a row of positional values, aligned to the header.
//
// Values beyond the header are dropped, missing ones render as empty cells
// (in strict mode both are errors).
func (w *Writer) AppendRow(values ...any) error {
	if w.packed {
		return xlsxrows.ErrPacked
	}
	if !w.haveHeader {
		return xlsxrows.ErrNoHeader
	}
	if w.row >= xlsxrows.MaxRowCount {
		return xlsxrows.ErrTooManyRows
	}
	if w.opts.Strict {
		if n := len(w.header); len(values) > n {
			return &xlsxrows.FieldError{Row: w.row + 1, Field: xlsxrows.ColumnLabel(n + 1), Err: xlsxrows.ErrUnknownField}
		} else if len(values) < n {
			return &xlsxrows.FieldError{Row: w.row + 1, Field: w.header[len(values)], Err: xlsxrows.ErrMissingField}
		}
	}
	n := copy(w.cells, values)
	clear(w.cells[n:])
	w.appendRow(w.cells)
	return nil
}

func (w *Writer) appendRow(cells []any) {
	w.row++
	w.appendFragment(func(qw *qt.Writer) {
		for i, v := range cells {
			w.encodeCell(qw, xlsxrows.FormatValue(v), w.row, i+1)
		}
	})
}

// encodeCell writes a numeric cell for plain numbers,
// and a shared string reference for everything else.
func (w *Writer) encodeCell(qw *qt.Writer, value string, row, col int) {
	addr := w.labels.Address(row, col)
	if xlsxrows.IsPlainNumber(value) {
		streamnumberCell(qw, value, addr)
		return
	}
	streamstringCell(qw, w.strings.Intern(value), addr)
}

// appendFragment renders the current row with cells and stores it.
func (w *Writer) appendFragment(cells func(*qt.Writer)) {
	bb := qt.AcquireByteBuffer()
	qw := qt.AcquireWriter(bb)
	streamstartRow(qw, w.row)
	cells(qw)
	streamendRow(qw)
	qt.ReleaseWriter(qw)
	w.rows = append(w.rows, append(make([]byte, 0, len(bb.B)), bb.B...))
	qt.ReleaseByteBuffer(bb)
}

// Pack writes the archive to path.
//
// The archive is assembled in memory and written in one go,
// so on error no partial file is left at path.
func (w *Writer) Pack(path string) error {
	if w.packed {
		return xlsxrows.ErrPacked
	}
	ar, err := w.build()
	if err != nil {
		return err
	}
	if err = ar.WriteFile(path); err != nil {
		return &xlsxrows.IOError{Op: "write", Path: path, Err: err}
	}
	w.packed = true
	w.logger.Debug("packed", "path", path, "rows", w.row, "columns", len(w.header), "strings", w.strings.Len())
	return nil
}

// WriteTo writes the archive to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if w.packed {
		return 0, xlsxrows.ErrPacked
	}
	ar, err := w.build()
	if err != nil {
		return 0, err
	}
	n, err := ar.WriteTo(dst)
	if err != nil {
		return n, &xlsxrows.IOError{Op: "write", Err: err}
	}
	w.packed = true
	w.logger.Debug("packed", "bytes", n, "rows", w.row, "columns", len(w.header), "strings", w.strings.Len())
	return n, nil
}

// Entry names of the package, in the order they are written.
const (
	SharedStringsName = "xl/sharedStrings.xml"
	ContentTypesName  = "[Content_Types].xml"
	RelsName          = "_rels/.rels"
	WorkbookName      = "xl/workbook.xml"
	StylesName        = "xl/styles.xml"
	WorkbookRelsName  = "xl/_rels/workbook.xml.rels"
	SheetName         = "xl/worksheets/sheet1.xml"
)

func (w *Writer) build() (archive.Archive, error) {
	var ar archive.Archive
	if w.opts.NewArchive != nil {
		ar = w.opts.NewArchive()
	} else {
		ar = archive.NewZip(w.opts.CompressionLevel)
	}
	for _, e := range []struct {
		name string
		data []byte
	}{
		{SharedStringsName, w.sharedStrings()},
		{ContentTypesName, []byte(contentTypes())},
		{RelsName, []byte(rels())},
		{WorkbookName, []byte(workbook())},
		{StylesName, []byte(styles())},
		{WorkbookRelsName, []byte(workbookRels())},
		{SheetName, w.sheet()},
	} {
		if err := ar.AddEntry(e.name, e.data); err != nil {
			return nil, fmt.Errorf("add %s: %w", e.name, err)
		}
	}
	return ar, nil
}

func (w *Writer) sharedStrings() []byte {
	bb := qt.AcquireByteBuffer()
	defer qt.ReleaseByteBuffer(bb)
	qw := qt.AcquireWriter(bb)
	streamstringsHeader(qw, w.strings.Len())
	for _, s := range w.strings.Strings() {
		streamsharedString(qw, xlsxrows.EscapeXML(s))
	}
	streamstringsFooter(qw)
	qt.ReleaseWriter(qw)
	return append([]byte(nil), bb.B...)
}

func (w *Writer) sheet() []byte {
	size := 512
	for _, r := range w.rows {
		size += len(r)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, sheetHeader(w.Dimensions())...)
	for _, r := range w.rows {
		buf = append(buf, r...)
	}
	return append(buf, sheetFooter()...)
}
