// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package dbsource_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlsxrows"
	"github.com/UNO-SOFT/xlsxrows/dbsource"
)

// tableDriver serves every query with the same fixed result set.
type tableDriver struct {
	columns []string
	rows    [][]driver.Value
}

func (d tableDriver) Open(string) (driver.Conn, error) { return tableConn(d), nil }

type tableConn tableDriver

func (c tableConn) Prepare(string) (driver.Stmt, error) { return tableStmt(c), nil }
func (c tableConn) Close() error                        { return nil }
func (c tableConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }

type tableStmt tableConn

func (s tableStmt) Close() error  { return nil }
func (s tableStmt) NumInput() int { return -1 }
func (s tableStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("not supported")
}
func (s tableStmt) Query([]driver.Value) (driver.Rows, error) {
	return &tableRows{columns: s.columns, rows: s.rows}, nil
}

type tableRows struct {
	columns []string
	rows    [][]driver.Value
}

func (r *tableRows) Columns() []string { return r.columns }
func (r *tableRows) Close() error      { return nil }
func (r *tableRows) Next(dest []driver.Value) error {
	if len(r.rows) == 0 {
		return io.EOF
	}
	copy(dest, r.rows[0])
	r.rows = r.rows[1:]
	return nil
}

func init() {
	sql.Register("xlsxrows-table", tableDriver{
		columns: []string{"id", "name", "note"},
		rows: [][]driver.Value{
			{int64(1), []byte("alpha"), nil},
			{int64(2), "beta", []byte("<b>")},
		},
	})
}

func TestQuery(t *testing.T) {
	db, err := sqlx.Open("xlsxrows-table", "")
	require.NoError(t, err)
	defer db.Close()

	rows, err := dbsource.Query(context.Background(), db, "SELECT id, name, note FROM t")
	require.NoError(t, err)
	defer rows.Close()
	assert.Equal(t, []string{"id", "name", "note"}, rows.Columns())

	rec, err := rows.Read()
	require.NoError(t, err)
	assert.Equal(t, xlsxrows.Record{
		{Name: "id", Value: int64(1)},
		{Name: "name", Value: "alpha"},
		{Name: "note", Value: nil},
	}, rec)

	rec, err = rows.Read()
	require.NoError(t, err)
	assert.Equal(t, "<b>", rec[2].Value)

	_, err = rows.Read()
	assert.ErrorIs(t, err, io.EOF)
	_, err = rows.Read()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, rows.Close())
}

type countingWriter struct{ n int }

func (cw *countingWriter) SetHeader([]string) error { return nil }

func (cw *countingWriter) AddRow(xlsxrows.Record) error {
	cw.n++
	return nil
}

func TestCopyQuery(t *testing.T) {
	db, err := sqlx.Open("xlsxrows-table", "")
	require.NoError(t, err)
	defer db.Close()

	rows, err := dbsource.Query(context.Background(), db, "SELECT 1")
	require.NoError(t, err)
	defer rows.Close()

	var cw countingWriter
	n, err := xlsxrows.Copy(&cw, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, cw.n)
}

func TestNewRecord(t *testing.T) {
	rec := dbsource.NewRecord([]string{"a", "b"}, []any{[]byte("x"), 3.5})
	assert.Equal(t, xlsxrows.Record{{Name: "a", Value: "x"}, {Name: "b", Value: 3.5}}, rec)
}
