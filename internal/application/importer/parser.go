package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row one data row of an upload, keyed by column name. Line is 1-based
// and counts the header, so the first data row is line 2 — the number a
// user sees in their spreadsheet.
type Row struct {
	Line   int
	Values map[string]string
}

// Get returns the trimmed cell for a column, empty when absent.
func (r Row) Get(name string) string {
	return r.Values[name]
}

// Parse reads a CSV upload against spec. Rows failing required-field
// validation are reported in rowErrors and excluded from the returned
// rows; a malformed file (bad header, unreadable CSV) fails outright.
func Parse(r io.Reader, spec FormatSpec) (rows []Row, rowErrors []string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are padded, not fatal
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read CSV header: %w", err)
	}

	// Column positions by lower-cased name; unknown columns are ignored.
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, f := range spec.Fields {
		if f.Required {
			if _, ok := index[strings.ToLower(f.Name)]; !ok {
				return nil, nil, fmt.Errorf("missing required column %q", f.Name)
			}
		}
	}

	line := 1
	for {
		record, readErr := cr.Read()
		if readErr == io.EOF {
			break
		}
		line++
		if readErr != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", line, readErr))
			continue
		}

		row := Row{Line: line, Values: make(map[string]string, len(spec.Fields))}
		empty := true
		for _, f := range spec.Fields {
			pos, ok := index[strings.ToLower(f.Name)]
			if !ok || pos >= len(record) {
				continue
			}
			v := strings.TrimSpace(record[pos])
			row.Values[f.Name] = v
			if v != "" {
				empty = false
			}
		}
		if empty {
			continue // skip blank lines silently
		}

		valid := true
		for _, f := range spec.Fields {
			if f.Required && row.Get(f.Name) == "" {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: missing required field %q", line, f.Name))
				valid = false
				break
			}
		}
		if valid {
			rows = append(rows, row)
		}
	}
	return rows, rowErrors, nil
}

// SplitTags splits a tags cell on commas or semicolons, dropping empties.
func SplitTags(cell string) []string {
	if cell == "" {
		return nil
	}
	fields := strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' })
	var tags []string
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
