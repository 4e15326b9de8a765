// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pingen CLI. pingen reads a
// pin-definition workbook and generates the C++ pin name and pin function
// tables used by the board configuration tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the generate pipeline when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pingen [input.xlsx]",
	Short: "Generate C++ pin tables from a pin-definition spreadsheet",
	Long: `pingen reads the pin sheet of a pin-definition workbook (Pin Num, Pin Name,
Description columns) and writes two generated C++ files:

  initializePinNameMappings.cpp  pin number to pad name
  initializePinFunctions.cpp     per-pad function lists, defaults, and macros

The input workbook defaults to pins.xlsx and may be given as the only
argument. Subcommands query the same table without generating code.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pingen.yaml or ~/.config/pingen/pingen.yaml)")
	rootCmd.PersistentFlags().String("input", defaultInput, "pin-definition workbook")
	rootCmd.PersistentFlags().Int("sheet", defaultSheet, "zero-based index of the pin sheet")
	rootCmd.PersistentFlags().String("remap-file", "", "YAML file replacing the built-in function rename table")

	rootCmd.Flags().String("output-dir", ".", "directory for generated files")
	rootCmd.Flags().String("mappings-out", defaultMappingsFile, "file name of the pin name mappings")
	rootCmd.Flags().String("functions-out", defaultFunctionsFile, "file name of the pin function table")

	mustBind("input", rootCmd.PersistentFlags().Lookup("input"))
	mustBind("sheet", rootCmd.PersistentFlags().Lookup("sheet"))
	mustBind("remap_file", rootCmd.PersistentFlags().Lookup("remap-file"))
	mustBind("output.dir", rootCmd.Flags().Lookup("output-dir"))
	mustBind("output.mappings", rootCmd.Flags().Lookup("mappings-out"))
	mustBind("output.functions", rootCmd.Flags().Lookup("functions-out"))

	viper.SetDefault("columns.pin_num", "Pin Num")
	viper.SetDefault("columns.pin_name", "Pin Name")
	viper.SetDefault("columns.functions", "Description")
	viper.SetDefault("db.path", "pins.db")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pingen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pingen"))
		}
	}

	viper.SetEnvPrefix("PINGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
