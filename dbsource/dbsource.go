// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package dbsource reads query results as records.
package dbsource

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"github.com/UNO-SOFT/xlsxrows"
)

var _ = (xlsxrows.Source)((*Rows)(nil))

// Rows is a Source over a query result, in the result's column order.
type Rows struct {
	rows    *sqlx.Rows
	columns []string
	err     error
}

// Query runs the query and returns its rows. Close must be called.
func Query(ctx context.Context, db *sqlx.DB, query string, args ...any) (*Rows, error) {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", query, err)
	}
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &Rows{rows: rows, columns: columns}, nil
}

// Columns returns the column names of the result.
func (r *Rows) Columns() []string { return r.columns }

// Read returns the next row, or io.EOF.
func (r *Rows) Read() (xlsxrows.Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.rows.Next() {
		if r.err = r.rows.Err(); r.err == nil {
			r.err = io.EOF
		}
		return nil, r.err
	}
	values, err := r.rows.SliceScan()
	if err != nil {
		r.err = err
		return nil, err
	}
	return NewRecord(r.columns, values), nil
}

// Close releases the result set.
func (r *Rows) Close() error {
	if r == nil || r.rows == nil {
		return nil
	}
	return r.rows.Close()
}

// NewRecord builds a record from scanned values.
// Drivers return text columns as []byte; those are converted to string.
func NewRecord(columns []string, values []any) xlsxrows.Record {
	vals := make([]any, len(values))
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			vals[i] = string(b)
		} else {
			vals[i] = v
		}
	}
	return xlsxrows.NewRecord(columns, vals...)
}
