// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pingen/internal/store"
	"github.com/pdiddy/pingen/pkg/types"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the SQLite pin database (store, retrieve, export)",
	Long: `DB keeps the built pin table in a local SQLite database so scripts and
other tools can query pins without reading the workbook.`,
}

// --- store subcommand ---

var dbStoreCmd = &cobra.Command{
	Use:   "store [input.xlsx]",
	Short: "Build the pin table and replace the database contents with it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDBStore,
}

func runDBStore(cmd *cobra.Command, args []string) error {
	cfg, err := generateConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	w := cmd.OutOrStdout()
	tbl, err := loadTable(cfg, w)
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Ingest(context.Background(), tbl.Pins, tbl.Functions, w)
	return err
}

// --- retrieve subcommand ---

var dbRetrieveCmd = &cobra.Command{
	Use:   "retrieve [pin]",
	Short: "Query stored pins by number, name, or function",
	Long: `Retrieve lists stored pins matching a pin number or name, a function
(--function), or both. With no filter every pin is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDBRetrieve,
}

func runDBRetrieve(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	pins, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if len(pins) == 0 && opts.IsEmpty() && !jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "No pins stored in %s; run 'pingen db store' first.\n", s.Path())
		return nil
	}
	return formatRetrieveOutput(cmd, pins, jsonOutput)
}

func formatRetrieveOutput(cmd *cobra.Command, pins []types.Pin, jsonOutput bool) error {
	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pins)
	}

	if len(pins) == 0 {
		fmt.Fprintln(w, "No pins found.")
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-24s  %-20s  %s\n", "Pin", "Name", "Default", "Functions")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, p := range pins {
		fmt.Fprintf(w, "%-6s  %-24s  %-20s  %s\n", p.Number, p.Name, p.Default, strings.Join(p.Functions, ", "))
	}
	fmt.Fprintf(w, "\n%d pins\n", len(pins))
	return nil
}

// --- export subcommand ---

var dbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored pins and functions to YAML or JSON",
	RunE:  runDBExport,
}

func runDBExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	s, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	ctx := context.Background()

	switch format {
	case "yaml", "":
		if out == "" {
			out = "pins.yaml"
		}
		err = s.ExportYAML(ctx, opts, out)
	case "json":
		if out == "" {
			out = "pins.json"
		}
		err = s.ExportJSON(ctx, opts, out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	pin, _ := cmd.Flags().GetString("pin")
	if pin == "" && len(args) > 0 {
		pin = args[0]
	}
	function, _ := cmd.Flags().GetString("function")
	return store.QueryOptions{Pin: pin, Function: function}
}

func init() {
	dbCmd.PersistentFlags().String("db", "pins.db", "SQLite database file")
	mustBind("db.path", dbCmd.PersistentFlags().Lookup("db"))

	dbRetrieveCmd.Flags().String("pin", "", "pin number or name")
	dbRetrieveCmd.Flags().String("function", "", "only pins supporting this function")
	dbRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	dbExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	dbExportCmd.Flags().String("out", "", "output file (default pins.yaml or pins.json)")
	dbExportCmd.Flags().String("pin", "", "export only this pin number or name")
	dbExportCmd.Flags().String("function", "", "export only pins supporting this function")

	dbCmd.AddCommand(dbStoreCmd)
	dbCmd.AddCommand(dbRetrieveCmd)
	dbCmd.AddCommand(dbExportCmd)

	rootCmd.AddCommand(dbCmd)
}
