// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsxrows holds the types shared by the xlsx writer and the
// record sources: Record, the coordinate encoder, the shared string table
// and the errors.
package xlsxrows

import (
	"errors"
	"fmt"
	"io"
)

// RowWriter accepts records one by one.
type RowWriter interface {
	SetHeader(names []string) error
	AddRow(rec Record) error
}

// Source yields records. Read returns io.EOF after the last record.
type Source interface {
	Read() (Record, error)
}

// Field is a named value of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered mapping from column name to value.
//
// When a name occurs more than once, the first occurrence wins.
type Record []Field

// NewRecord zips names and values into a Record.
// Missing values are nil, surplus values are dropped.
func NewRecord(names []string, values ...any) Record {
	rec := make(Record, len(names))
	for i, nm := range names {
		rec[i].Name = nm
		if i < len(values) {
			rec[i].Value = values[i]
		}
	}
	return rec
}

// Keys returns the distinct names in order of first occurrence.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	seen := make(map[string]struct{}, len(r))
	for _, f := range r {
		if _, ok := seen[f.Name]; ok {
			continue
		}
		seen[f.Name] = struct{}{}
		keys = append(keys, f.Name)
	}
	return keys
}

// Get returns the value of the first field named name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

var (
	// ErrHeadersSet is returned when the column schema has already been committed,
	// either by an explicit SetHeader or by the first added row.
	ErrHeadersSet = errors.New("headers have already been set")
	// ErrNoHeader is returned by positional appends before a schema exists.
	ErrNoHeader       = errors.New("headers have not been set")
	ErrTooManyRows    = errors.New("too many rows")
	ErrTooManyColumns = errors.New("too many columns")
	ErrPacked         = errors.New("writer has already been packed")
	ErrMissingField   = errors.New("missing field")
	ErrUnknownField   = errors.New("unknown field")
)

// IOError is returned when the archive cannot be created or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}
func (e *IOError) Unwrap() error { return e.Err }

// FieldError reports a record that does not fit the schema in strict mode.
type FieldError struct {
	Row   int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d: %q: %v", e.Row, e.Field, e.Err)
}
func (e *FieldError) Unwrap() error { return e.Err }

// Copy reads all records from src and adds them to w.
// It returns the number of records added.
func Copy(w RowWriter, src Source) (int, error) {
	var n int
	for {
		rec, err := src.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		if err = w.AddRow(rec); err != nil {
			return n, fmt.Errorf("record %d: %w", n+1, err)
		}
		n++
	}
}
