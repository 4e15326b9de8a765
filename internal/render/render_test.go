// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pingen/pkg/types"
)

func testPins() []types.Pin {
	return []types.Pin{
		{Number: "B1", Name: "PAD_MIPI_TXM0", Functions: []string{"XGPIOC_12", "VO_D_2"}, Default: "XGPIOC_12"},
		{Number: "A10", Name: "PAD_AUD_AOUTR", Functions: []string{"GPIO"}, Default: "GPIO"},
		{Number: "12", Name: "PWR_GPIO4", Functions: []string{"PWM_8", "XGPIOC_4"}, Default: "XGPIOC_4"},
		{Number: "A2", Name: "PAD_ETH_RXM", Functions: []string{"XGPIO2_3", "UART0_TX"}, Default: "UART0_TX"},
		{Number: "7", Name: "SD0_CLK", Functions: []string{"SDIO0_CLK"}, Default: "SDIO0_CLK"},
	}
}

func TestMappings(t *testing.T) {
	var out, log bytes.Buffer
	require.NoError(t, Mappings(&out, testPins(), &log))

	want := `void MainWindow::initializePinNameMappings()
{
    // BGA pin mappings (alphanumeric), generated and sorted by pingen
    m_pinNameMappings["7"] = "SD0_CLK";
    m_pinNameMappings["12"] = "PWR_GPIO4";
    m_pinNameMappings["A2"] = "PAD_ETH_RXM";
    m_pinNameMappings["A10"] = "PAD_AUD_AOUTR";

    m_pinNameMappings["B1"] = "PAD_MIPI_TXM0";
}
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Mappings() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, log.String(), "sorted 5 pins")
}

func TestMappings_LongPinNumbers(t *testing.T) {
	pins := []types.Pin{
		{Number: "B1", Name: "PAD_B1"},
		{Number: "A1", Name: "PAD_A1"},
		{Number: "12345678901234567890", Name: "PAD_LONG"},
	}
	var out, log bytes.Buffer
	require.NoError(t, Mappings(&out, pins, &log))

	want := `void MainWindow::initializePinNameMappings()
{
    // BGA pin mappings (alphanumeric), generated and sorted by pingen
    m_pinNameMappings["12345678901234567890"] = "PAD_LONG";
    m_pinNameMappings["A1"] = "PAD_A1";

    m_pinNameMappings["B1"] = "PAD_B1";
}
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Mappings() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, log.String(), "sorted 3 pins")
}

func TestFunctions(t *testing.T) {
	pins := testPins()
	functions := map[string]bool{}
	for _, p := range pins {
		for _, f := range p.Functions {
			functions[f] = true
		}
	}

	var out, log bytes.Buffer
	require.NoError(t, Functions(&out, pins, functions, &log))
	got := out.String()

	assert.True(t, strings.HasPrefix(got, "// Generated by pingen: 5 pins, 8 distinct functions.\n#include \"pinfunction.h\"\n"))
	for _, accessor := range []string{
		"PinFunction::PinFunction()",
		"QStringList PinFunction::getSupportedFunctions(const QString& pinName) const",
		"QString PinFunction::getDefaultFunction(const QString& pinName) const",
		"QString PinFunction::getFunctionMacroName(const QString& pinName, const QString& function) const",
		"bool PinFunction::isPinFunctionSupported(const QString& pinName, const QString& function) const",
		"void PinFunction::initializePinFunctions()",
	} {
		assert.Contains(t, got, accessor)
	}

	wantPin := `    // A2 pin functions (pin name: PAD_ETH_RXM)
    // keyed by the pad name
    m_pinFunctions["PAD_ETH_RXM"] = QStringList() << "XGPIO2_3" << "UART0_TX";
    m_defaultFunctions["PAD_ETH_RXM"] = "UART0_TX";
    // function macros
    m_functionMacros["UART0_TX"] = "UART0_TX";
    m_functionMacros["XGPIO2_3"] = "XGPIO2_3";

`
	assert.Contains(t, got, wantPin)

	order := []string{`"SD0_CLK"`, `"PWR_GPIO4"`, `"PAD_ETH_RXM"`, `"PAD_AUD_AOUTR"`, `"PAD_MIPI_TXM0"`}
	last := -1
	for _, name := range order {
		i := strings.Index(got, "m_pinFunctions["+name+"]")
		require.NotEqual(t, -1, i, name)
		assert.Greater(t, i, last, "%s out of order", name)
		last = i
	}

	// B1 starts a new letter group after A10.
	assert.Contains(t, got, "m_functionMacros[\"GPIO\"] = \"GPIO\";\n\n\n    // B1 pin functions")

	assert.Contains(t, got, `QStringList basicFunctions = QStringList() << "GPIO" << "ADC" << "PWM" << "I2C" << "UART" << "SPI";`)
	assert.Contains(t, got, "for (int i = 1; i <= 88; ++i) {")
	assert.Contains(t, got, `QString rows = "ABCDEFGHJKLMNOPQR";`)
	assert.Contains(t, got, "for (int c = 1; c <= 15; ++c) {")
	assert.Contains(t, got, "if (!isCorner && !m_pinFunctions.contains(pinName)) {")
	assert.True(t, strings.HasSuffix(got, "        }\n    }\n}\n"))
}

func TestFunctions_EmptyTable(t *testing.T) {
	var out, log bytes.Buffer
	require.NoError(t, Functions(&out, nil, nil, &log))
	assert.Contains(t, out.String(), "void PinFunction::initializePinFunctions()\n{\n\n    // --- fallback")
}

func TestCppString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PAD_ETH_RXM", `"PAD_ETH_RXM"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\pins`, `"C:\\pins"`},
		{"two\nlines", `"two\nlines"`},
		{"bell\a", `"bell\x07"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cppString(tt.in))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	var log bytes.Buffer
	err := Mappings(failingWriter{}, testPins(), &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	err = Functions(failingWriter{}, testPins(), nil, &log)
	require.Error(t, err)
}

func TestWriteAll_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	good := filepath.Join(dir, "out", "initializePinFunctions.cpp")
	pins := testPins()

	var log bytes.Buffer
	err := WriteAll([]Artifact{
		{
			Path:   filepath.Join(blocker, "initializePinNameMappings.cpp"),
			Render: func(w io.Writer) error { return Mappings(w, pins, &log) },
		},
		{
			Path:   good,
			Render: func(w io.Writer) error { return Functions(w, pins, nil, &log) },
		},
	}, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")

	data, readErr := os.ReadFile(good)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "initializePinFunctions")
	assert.Contains(t, log.String(), "error: ")
	assert.Contains(t, log.String(), "wrote "+good)
}
