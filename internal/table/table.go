// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table builds the pin table from spreadsheet rows: it validates the
// header, cleans pin names, parses function descriptions, and collects the
// set of all functions seen.
package table

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/pingen/internal/cell"
	"github.com/pdiddy/pingen/pkg/types"
)

// aliasSeparator joins a pad name and an alternate name in the Pin Name
// column, e.g. "PAD_ETH_RXM___EPHY_TXP".
const aliasSeparator = "___"

// Source is a header row plus data rows of text cells.
type Source interface {
	Header() []string
	Rows() [][]string
}

// SchemaError reports required columns absent from the source header.
type SchemaError struct {
	Required []string
	Missing  []string
	Actual   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns %q (required %q, found %q)", e.Missing, e.Required, e.Actual)
}

// Warning describes a row that was skipped. Row is the physical spreadsheet
// row, counting the header as row 1.
type Warning struct {
	Row     int
	Message string
}

// Table is the result of a build.
type Table struct {
	// Pins is in source row order.
	Pins []types.Pin

	// Functions is the set of every function name on any pin.
	Functions map[string]bool

	// Warnings lists skipped rows.
	Warnings []Warning
}

// FunctionNames returns the function set in sorted order.
func (t *Table) FunctionNames() []string {
	names := make([]string, 0, len(t.Functions))
	for f := range t.Functions {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// NormalizeName trims a raw pin name and drops any alternate names after the
// first "___". It reports whether anything was dropped. A name that starts
// with the separator is kept whole.
func NormalizeName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	before, _, found := strings.Cut(name, aliasSeparator)
	if !found {
		return name, false
	}
	before = strings.TrimSpace(before)
	if before == "" {
		return name, false
	}
	return before, true
}

// Build reads every row of src into a Table. Missing columns fail the whole
// build with a *SchemaError. Rows with a blank pin number or name are
// skipped with a warning. Progress and warnings are written to w.
func Build(src Source, cols types.Columns, p *cell.Parser, w io.Writer) (*Table, error) {
	index, err := columnIndex(src.Header(), cols.Required())
	if err != nil {
		return nil, err
	}
	numCol, nameCol, fnCol := index[cols.PinNum], index[cols.PinName], index[cols.Functions]

	t := &Table{Functions: make(map[string]bool)}

	for i, row := range src.Rows() {
		number := strings.TrimSpace(field(row, numCol))
		rawName := strings.TrimSpace(field(row, nameCol))
		if number == "" || rawName == "" {
			warn := Warning{
				Row:     i + 2,
				Message: fmt.Sprintf("%s or %s is empty", cols.PinNum, cols.PinName),
			}
			t.Warnings = append(t.Warnings, warn)
			fmt.Fprintf(w, "warning: skipping row %d, %s\n", warn.Row, warn.Message)
			continue
		}

		name, truncated := NormalizeName(rawName)
		if truncated {
			fmt.Fprintf(w, "    -> note: pin name %q cleaned to %q\n", rawName, name)
		}

		functions, def := p.Parse(field(row, fnCol))
		t.Pins = append(t.Pins, types.Pin{
			Number:    number,
			Name:      name,
			Functions: functions,
			Default:   def,
		})
		for _, f := range functions {
			t.Functions[f] = true
		}
	}

	fmt.Fprintf(w, "parsed %d pins (%d distinct functions, %d rows skipped)\n",
		len(t.Pins), len(t.Functions), len(t.Warnings))
	return t, nil
}

// columnIndex maps each required header to its position. Header cells match
// exactly; the first occurrence wins.
func columnIndex(header, required []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}

	var missing []string
	for _, r := range required {
		if _, ok := pos[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Required: required, Missing: missing, Actual: header}
	}
	return pos, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
