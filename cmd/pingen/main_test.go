// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/pingen/pkg/types"
)

func writePinWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Pin Num", "Pin Name", "Description"},
		{"A2", "PAD_ETH_RXM___EPHY_TXP", "function select\n0 : XGPIO2_3\n1 : UART0_TX (default)\nOthers : reserved"},
		{"A10", "GPIO0", "function select\n0 : UART0_TX\n3 : GPIO (default)"},
		{"B1", "GPIO1", "0 : SPI_CLK\n3 : XGPIOA_1"},
		{"12", "VDD", "Power"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "pins.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// execute runs the root command and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	input := writePinWorkbook(t)
	dir := t.TempDir()

	out, err := execute(t, input, "--sheet", "0", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `pin name "PAD_ETH_RXM___EPHY_TXP" cleaned to "PAD_ETH_RXM"`)
	assert.Contains(t, out, "parsed 4 pins (5 distinct functions, 0 rows skipped)")
	assert.Contains(t, out, "done.")

	data, err := os.ReadFile(filepath.Join(dir, defaultMappingsFile))
	require.NoError(t, err)
	mappings := string(data)
	assert.Contains(t, mappings, `
    m_pinNameMappings["12"] = "VDD";
    m_pinNameMappings["A2"] = "PAD_ETH_RXM";
    m_pinNameMappings["A10"] = "GPIO0";

    m_pinNameMappings["B1"] = "GPIO1";
}
`)
	assert.NotContains(t, mappings, "EPHY_TXP")

	data, err = os.ReadFile(filepath.Join(dir, defaultFunctionsFile))
	require.NoError(t, err)
	functions := string(data)
	assert.True(t, strings.HasPrefix(functions, "// Generated by pingen: 4 pins, 5 distinct functions.\n"))

	for _, line := range []string{
		`m_pinFunctions["PAD_ETH_RXM"] = QStringList() << "XGPIO2_3" << "UART0_TX";`,
		`m_defaultFunctions["PAD_ETH_RXM"] = "UART0_TX";`,
		`m_pinFunctions["GPIO0"] = QStringList() << "UART0_TX" << "GPIO";`,
		`m_defaultFunctions["GPIO0"] = "GPIO";`,
		`m_pinFunctions["GPIO1"] = QStringList() << "SPI_CLK" << "XGPIOA_1";`,
		`m_defaultFunctions["GPIO1"] = "XGPIOA_1";`,
		`m_pinFunctions["VDD"] = QStringList() << "GPIO";`,
		`m_defaultFunctions["VDD"] = "GPIO";`,
	} {
		assert.Contains(t, functions, "    "+line+"\n")
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "absent.xlsx"), "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "cannot find file")
}

func TestLookup(t *testing.T) {
	input := writePinWorkbook(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "workbook pin with function",
			args: []string{"GPIO1", "SPI_CLK"},
			want: []string{
				"pin:       GPIO1 (workbook)",
				"functions: SPI_CLK, XGPIOA_1",
				"default:   XGPIOA_1",
				"SPI_CLK supported: true",
				"SPI_CLK macro:     SPI_CLK",
			},
		},
		{
			name: "fallback pin",
			args: []string{"7"},
			want: []string{
				"pin:       7 (fallback)",
				"functions: GPIO, ADC, PWM, I2C, UART, SPI",
				"default:   GPIO",
			},
		},
		{
			name: "unknown pin",
			args: []string{"PAD_NOPE", "uart"},
			want: []string{
				"pin:       PAD_NOPE (unknown pin, defaults)",
				"functions: GPIO",
				"uart supported: false",
				"uart macro:     UART",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"lookup"}, tt.args...)
			args = append(args, "--input", input, "--sheet", "0")
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, "parsed 4 pins", "build progress goes to stdout")
			for _, w := range tt.want {
				assert.Contains(t, out, w+"\n")
			}
		})
	}
}

func TestDBStoreAndRetrieve(t *testing.T) {
	input := writePinWorkbook(t)
	db := filepath.Join(t.TempDir(), "pins.db")

	out, err := execute(t, "db", "store", input, "--sheet", "0", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "stored 4 pins, 5 distinct functions")

	out, err = execute(t, "db", "retrieve", "--db", db, "--function", "SPI_CLK", "--pin", "")
	require.NoError(t, err)
	assert.Contains(t, out, "GPIO1")
	assert.Contains(t, out, "SPI_CLK, XGPIOA_1")
	assert.NotContains(t, out, "GPIO0")
	assert.Contains(t, out, "\n1 pins\n")

	out, err = execute(t, "db", "retrieve", "PAD_ETH_RXM", "--db", db, "--function", "")
	require.NoError(t, err)
	assert.Contains(t, out, "XGPIO2_3, UART0_TX")
	assert.Contains(t, out, "\n1 pins\n")
}

func TestDefinedIn(t *testing.T) {
	pins := []types.Pin{{Number: "A2", Name: "GPIO0"}}
	assert.True(t, definedIn(pins, "GPIO0"))
	assert.False(t, definedIn(pins, "A2"))
	assert.False(t, definedIn(nil, "GPIO0"))
}
