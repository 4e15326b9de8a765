// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pingen/internal/cell"
	"github.com/pdiddy/pingen/internal/render"
	"github.com/pdiddy/pingen/internal/sheet"
	"github.com/pdiddy/pingen/internal/table"
	"github.com/pdiddy/pingen/pkg/types"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	cfg, err := generateConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
		fmt.Fprintf(w, "using input file from the command line: %s\n", cfg.Input)
	} else {
		fmt.Fprintf(w, "no input file given, using %s\n", cfg.Input)
		fmt.Fprintf(w, "hint: run '%s <workbook.xlsx>' to choose another file\n", cmd.Root().Name())
	}

	tbl, err := loadTable(cfg, w)
	if err != nil {
		return err
	}

	mappingsPath := filepath.Join(cfg.Output.Dir, cfg.Output.Mappings)
	functionsPath := filepath.Join(cfg.Output.Dir, cfg.Output.Functions)

	err = render.WriteAll([]render.Artifact{
		{
			Path:   mappingsPath,
			Render: func(out io.Writer) error { return render.Mappings(out, tbl.Pins, w) },
		},
		{
			Path:   functionsPath,
			Render: func(out io.Writer) error { return render.Functions(out, tbl.Pins, tbl.Functions, w) },
		},
	}, w)
	fmt.Fprintln(w, strings.Repeat("-", 20))
	if err != nil {
		return fmt.Errorf("generation incomplete: %w", err)
	}
	fmt.Fprintln(w, "done.")
	return nil
}

// loadTable reads the configured sheet and builds the pin table. Fatal
// problems are explained on w before the error is returned.
func loadTable(cfg types.GenerateConfig, w io.Writer) (*table.Table, error) {
	remap := cell.DefaultRemap()
	if cfg.RemapFile != "" {
		r, err := cell.LoadRemap(cfg.RemapFile)
		if err != nil {
			return nil, err
		}
		remap = r
		fmt.Fprintf(w, "loaded %d function renames from %s\n", remap.Len(), cfg.RemapFile)
	}

	s, err := sheet.Load(cfg.Input, cfg.Sheet)
	switch {
	case errors.Is(err, sheet.ErrFileNotFound):
		fmt.Fprintf(w, "error: cannot find file '%s'\n", cfg.Input)
		fmt.Fprintln(w, "make sure the workbook is in the current directory or pass its full path")
		return nil, err
	case errors.Is(err, sheet.ErrSheetNotFound):
		fmt.Fprintf(w, "error: worksheet index %d does not exist (sheet %d of the workbook)\n", cfg.Sheet, cfg.Sheet+1)
		return nil, err
	case err != nil:
		fmt.Fprintf(w, "error reading workbook: %v\n", err)
		return nil, err
	}
	fmt.Fprintf(w, "loaded %d rows from sheet %d (%q) of '%s'\n", len(s.Rows()), cfg.Sheet+1, s.Name, cfg.Input)

	tbl, err := table.Build(s, cfg.Columns, cell.NewParser(remap), w)
	var schemaErr *table.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintln(w, "error: the workbook is missing required columns")
		fmt.Fprintf(w, "required: %q\n", schemaErr.Required)
		fmt.Fprintf(w, "found:    %q\n", schemaErr.Actual)
		fmt.Fprintln(w, "check that the header row matches exactly, including case and spaces")
		return nil, err
	}
	return tbl, err
}
