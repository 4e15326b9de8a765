// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pingen/internal/pinfunc"
	"github.com/pdiddy/pingen/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <pin-name> [function]",
	Short: "Show the functions the generated table gives a pin",
	Long: `Lookup builds the pin table from the workbook and answers the same
questions as the generated PinFunction class: supported functions, default
function, and, when a function is given, whether it is supported and its
macro name. Pins missing from the workbook get the QFN/BGA fallback set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := generateConfig()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	tbl, err := loadTable(cfg, w)
	if err != nil {
		return err
	}

	f := pinfunc.New(tbl.Pins)
	pin := args[0]

	source := "workbook"
	if !f.Known(pin) {
		source = "unknown pin, defaults"
	} else if !definedIn(tbl.Pins, pin) {
		source = "fallback"
	}

	fmt.Fprintf(w, "pin:       %s (%s)\n", pin, source)
	fmt.Fprintf(w, "functions: %s\n", strings.Join(f.SupportedFunctions(pin), ", "))
	fmt.Fprintf(w, "default:   %s\n", f.DefaultFunction(pin))

	if len(args) == 2 {
		fn := args[1]
		fmt.Fprintf(w, "%s supported: %t\n", fn, f.IsSupported(pin, fn))
		fmt.Fprintf(w, "%s macro:     %s\n", fn, f.MacroName(pin, fn))
	}
	return nil
}

func definedIn(pins []types.Pin, name string) bool {
	for _, p := range pins {
		if p.Name == name {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
