// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads one worksheet of an xlsx workbook as text rows.
package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrFileNotFound is returned when the workbook path does not exist.
	ErrFileNotFound = errors.New("workbook not found")

	// ErrSheetNotFound is returned when the requested sheet index is out of range.
	ErrSheetNotFound = errors.New("worksheet not found")
)

// Sheet holds a worksheet's header row and data rows. Every cell is text;
// numbers are returned as formatted in the workbook.
type Sheet struct {
	// Name is the worksheet name.
	Name string

	header []string
	rows   [][]string
}

// Header returns the first row of the sheet.
func (s *Sheet) Header() []string { return s.header }

// Rows returns the data rows below the header. Rows may be shorter than the
// header when trailing cells are empty.
func (s *Sheet) Rows() [][]string { return s.rows }

// Load opens the workbook at path and reads the sheet at the zero-based
// index. The workbook file is closed before Load returns.
func Load(path string, index int) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("checking workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: index %d (workbook has %d sheets)", ErrSheetNotFound, index, len(names))
	}
	name := names[index]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	s := &Sheet{Name: name}
	if len(rows) > 0 {
		s.header = rows[0]
		s.rows = rows[1:]
	}
	return s, nil
}
