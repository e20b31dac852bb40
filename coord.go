// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxrows

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MaxRowCount is the number of maximum rows.
	MaxRowCount = 1_048_576
	// MaxColumnCount is the number of maximum columns (XFD).
	MaxColumnCount = 16_384
)

// ColumnLabel returns the bijective base-26 label of the 1-based column:
// 1 is "A", 26 is "Z", 27 is "AA".
//
// It returns "" for col < 1.
func ColumnLabel(col int) string {
	if col < 1 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// ParseColumnLabel is the inverse of ColumnLabel. Lower case letters are accepted.
func ParseColumnLabel(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty column label")
	}
	var col int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || 'Z' < c {
			return 0, fmt.Errorf("%q: invalid column label character %q", s, s[i])
		}
		if col > (math.MaxInt-26)/26 {
			return 0, fmt.Errorf("%q: column label overflows", s)
		}
		col = col*26 + int(c-'A') + 1
	}
	return col, nil
}

// CellAddress returns the A1-style address of the cell.
//
// Column 0 means an empty sheet and yields "A1" whatever the row is.
func CellAddress(row, col int) string {
	if col == 0 {
		row, col = 1, 1
	}
	return ColumnLabel(col) + strconv.Itoa(row)
}

// ColumnLabels memoizes ColumnLabel.
//
// The zero value is ready to use. It is not safe for concurrent use.
type ColumnLabels struct {
	m map[int]string
}

// Label returns ColumnLabel(col), computing it only once per column.
func (cl *ColumnLabels) Label(col int) string {
	if s, ok := cl.m[col]; ok {
		return s
	}
	if cl.m == nil {
		cl.m = make(map[int]string)
	}
	s := ColumnLabel(col)
	cl.m[col] = s
	return s
}

// Address is CellAddress with memoized column labels.
func (cl *ColumnLabels) Address(row, col int) string {
	if col == 0 {
		row, col = 1, 1
	}
	return cl.Label(col) + strconv.Itoa(row)
}
