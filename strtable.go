// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxrows

// StringTable is the shared string table of a workbook: every distinct
// string gets a stable index, in first-seen order.
//
// The zero value is ready to use. It is not safe for concurrent use.
type StringTable struct {
	index   map[string]int
	strings []string
}

// Intern returns the index of value, registering it if it is new.
func (st *StringTable) Intern(value string) int {
	if i, ok := st.index[value]; ok {
		return i
	}
	if st.index == nil {
		st.index = make(map[string]int)
	}
	i := len(st.strings)
	st.index[value] = i
	st.strings = append(st.strings, value)
	return i
}

// Index returns the index of value, if registered.
func (st *StringTable) Index(value string) (int, bool) {
	i, ok := st.index[value]
	return i, ok
}

// Len returns the number of distinct strings.
func (st *StringTable) Len() int { return len(st.strings) }

// Strings returns the strings in index order. The slice must not be modified.
func (st *StringTable) Strings() []string { return st.strings }
