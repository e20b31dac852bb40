// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/xlsxrows"
)

var errNoSheet = errors.New("workbook has no sheets")

// ReadFile returns the cell texts of the first sheet of the xlsx file.
// Trailing empty cells of a row are omitted.
func ReadFile(path string) ([][]string, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xl.Close()
	return readRows(xl)
}

// Read is like ReadFile, but reads the workbook from r.
func Read(r io.Reader) ([][]string, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer xl.Close()
	return readRows(xl)
}

func readRows(xl *excelize.File) ([][]string, error) {
	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheet
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sheets[0], err)
	}
	return rows, nil
}

// ReadRecords reads the first sheet of the xlsx file, using its first row as header.
// Every record carries every header column, empty cells as "".
func ReadRecords(path string) ([]xlsxrows.Record, error) {
	rows, err := ReadFile(path)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	header := rows[0]
	recs := make([]xlsxrows.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		values := make([]any, len(header))
		for i := range values {
			if i < len(row) {
				values[i] = row[i]
			} else {
				values[i] = ""
			}
		}
		recs = append(recs, xlsxrows.NewRecord(header, values...))
	}
	return recs, nil
}
