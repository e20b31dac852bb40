// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/xlsxrows/xlsx"
)

func TestOutName(t *testing.T) {
	for _, tc := range []struct {
		flag, inp, want string
	}{
		{"", "data.csv", "data.xlsx"},
		{"", "dir/data.json", "dir/data.xlsx"},
		{"", "noext", "noext.xlsx"},
		{"x.xlsx", "data.csv", "x.xlsx"},
		{"-", "data.csv", "-"},
		{"", "", ""},
		{"", "-", ""},
	} {
		assert.Equal(t, tc.want, outName(tc.flag, tc.inp), "%+v", tc)
	}
}

func TestPack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.xlsx")
	w := xlsx.NewWriter(xlsx.Options{})
	require.NoError(t, w.SetHeader([]string{"a"}))
	require.NoError(t, w.AppendRow("1"))
	require.NoError(t, pack(w, fn))

	rows, err := xlsx.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"1"}}, rows)
}
