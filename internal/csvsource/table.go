// Package csvsource reads the delimited membership exports into memory and
// resolves their year-block column layout.
package csvsource

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Table is one source file read fully into memory. Every cell is text;
// numeric and date interpretation happens downstream, never here.
type Table struct {
	// Name is the base name of the source file.
	Name string

	// Headers is the ordered header row.
	Headers []string

	// Rows holds the data rows. Rows may be shorter than Headers; missing
	// trailing cells read as empty.
	Rows [][]string

	index map[string]int
}

// ReadFile loads a delimited table from path. The file is decoded as UTF-8
// when its bytes are valid UTF-8, otherwise as ISO-8859-1, which the older
// exports were saved in.
func ReadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s as ISO-8859-1: %w", path, err)
		}
	}
	return parse(filepath.Base(path), raw)
}

func parse(name string, raw []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: missing header row", name)
	}

	t := &Table{
		Name:    name,
		Headers: records[0],
		Rows:    records[1:],
		index:   make(map[string]int, len(records[0])),
	}
	for i, h := range t.Headers {
		// First occurrence wins on duplicate headers.
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
	return t, nil
}

// Field returns the cell of row under the named header, or "" when the
// header is unknown or the row is too short.
func (t *Table) Field(row []string, header string) string {
	i, ok := t.index[header]
	if !ok {
		return ""
	}
	return Cell(row, i)
}

// Cell returns row[i], or "" when i is out of range.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
