// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxrows

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// JSONSource reads records from a JSON array of objects, or from
// whitespace (newline) separated objects.
//
// Key order is kept as written. Strings are passed as text, numbers as
// their literal text, null as nil, everything else as raw JSON.
type JSONSource struct {
	items []gjson.Result
	next  int
}

// NewJSONSource reads the whole of r.
func NewJSONSource(r io.Reader) (*JSONSource, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSpace(string(b))
	var js JSONSource
	if strings.HasPrefix(s, "[") {
		if !gjson.Valid(s) {
			return nil, fmt.Errorf("invalid JSON array")
		}
		gjson.Parse(s).ForEach(func(_, value gjson.Result) bool {
			js.items = append(js.items, value)
			return true
		})
	} else {
		gjson.ForEachLine(s, func(line gjson.Result) bool {
			js.items = append(js.items, line)
			return true
		})
	}
	for i, item := range js.items {
		if !item.IsObject() || !gjson.Valid(item.Raw) {
			return nil, fmt.Errorf("item %d: not a JSON object: %.32q", i+1, item.Raw)
		}
	}
	return &js, nil
}

// Len returns the number of records.
func (js *JSONSource) Len() int { return len(js.items) }

func (js *JSONSource) Read() (Record, error) {
	if js.next >= len(js.items) {
		return nil, io.EOF
	}
	item := js.items[js.next]
	js.next++
	var rec Record
	item.ForEach(func(key, value gjson.Result) bool {
		rec = append(rec, Field{Name: key.String(), Value: jsonValue(value)})
		return true
	})
	return rec, nil
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}
