// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/pingen/internal/pinfunc"
	"github.com/pdiddy/pingen/internal/pinsort"
	"github.com/pdiddy/pingen/pkg/types"
)

// accessors is the fixed part of the PinFunction class: constructor and the
// four lookups. Unknown pins report GPIO.
const accessors = `#include "pinfunction.h"

PinFunction::PinFunction()
{
    initializePinFunctions();
}

QStringList PinFunction::getSupportedFunctions(const QString& pinName) const
{
    return m_pinFunctions.value(pinName, QStringList() << "GPIO");
}

QString PinFunction::getDefaultFunction(const QString& pinName) const
{
    return m_defaultFunctions.value(pinName, "GPIO");
}

QString PinFunction::getFunctionMacroName(const QString& pinName, const QString& function) const
{
    QString key = pinName + "_" + function;
    return m_functionMacros.value(key, function.toUpper());
}

bool PinFunction::isPinFunctionSupported(const QString& pinName, const QString& function) const
{
    return m_pinFunctions.value(pinName).contains(function);
}

`

// Functions writes the PinFunction class body. Each pin's functions, default
// and macro names are keyed by pad name. The QFN and BGA fallback loops that
// follow only fill names the table did not define.
func Functions(w io.Writer, pins []types.Pin, functions map[string]bool, log io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Generated by pingen: %d pins, %d distinct functions.\n", len(pins), len(functions))
	io.WriteString(bw, accessors)

	fmt.Fprintln(bw, "void PinFunction::initializePinFunctions()")
	fmt.Fprintln(bw, "{")

	var g pinsort.Grouper
	for _, p := range sorted(pins, log) {
		if g.Next(p.Number) {
			fmt.Fprintln(bw)
		}
		writePin(bw, p)
	}
	fmt.Fprintln(bw)

	writeFallback(bw)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func writePin(w io.Writer, p types.Pin) {
	name := cppString(p.Name)

	fmt.Fprintf(w, "%s// %s pin functions (pin name: %s)\n", indent, commentText(p.Number), commentText(p.Name))
	fmt.Fprintf(w, "%s// keyed by the pad name\n", indent)

	quoted := make([]string, len(p.Functions))
	for i, f := range p.Functions {
		quoted[i] = cppString(f)
	}
	fmt.Fprintf(w, "%sm_pinFunctions[%s] = QStringList() << %s;\n", indent, name, strings.Join(quoted, " << "))
	fmt.Fprintf(w, "%sm_defaultFunctions[%s] = %s;\n", indent, name, cppString(p.Default))

	fmt.Fprintf(w, "%s// function macros\n", indent)
	macros := append([]string(nil), p.Functions...)
	sort.Strings(macros)
	for _, f := range macros {
		fmt.Fprintf(w, "%sm_functionMacros[%s] = %s;\n", indent, cppString(f), cppString(f))
	}
	fmt.Fprintln(w)
}

// writeFallback emits the loops that give every QFN number and non-corner
// BGA position the basic function set when the table has no entry for it.
func writeFallback(w io.Writer) {
	quoted := make([]string, len(pinfunc.BasicFunctions))
	for i, f := range pinfunc.BasicFunctions {
		quoted[i] = cppString(f)
	}
	last := pinfunc.BGAColumns

	fmt.Fprintf(w, "%s// --- fallback for pins not in the spreadsheet ---\n", indent)
	fmt.Fprintf(w, "%s// basic function support for the remaining pins\n", indent)
	fmt.Fprintf(w, "%sQStringList basicFunctions = QStringList() << %s;\n\n", indent, strings.Join(quoted, " << "))

	fmt.Fprintf(w, "%s// QFN pins (numbered 1-%d)\n", indent, pinfunc.QFNPinCount)
	fmt.Fprintf(w, "%sfor (int i = 1; i <= %d; ++i) {\n", indent, pinfunc.QFNPinCount)
	fmt.Fprintf(w, "%sQString pinName = QString::number(i);\n", indent2)
	fmt.Fprintf(w, "%sif (!m_pinFunctions.contains(pinName)) {\n", indent2)
	fmt.Fprintf(w, "%sm_pinFunctions[pinName] = basicFunctions;\n", indent3)
	fmt.Fprintf(w, "%sm_defaultFunctions[pinName] = %s;\n", indent3, cppString(types.DefaultFunction))
	fmt.Fprintf(w, "%s}\n", indent2)
	fmt.Fprintf(w, "%s}\n\n", indent)

	rows := pinfunc.BGARows
	lastRow := rows[len(rows)-1:]
	fmt.Fprintf(w, "%s// BGA pins (A1-%s%d, row I skipped)\n", indent, lastRow, last)
	fmt.Fprintf(w, "%sQString rows = %s;\n", indent, cppString(rows))
	fmt.Fprintf(w, "%sfor (int r = 0; r < rows.length(); ++r) {\n", indent)
	fmt.Fprintf(w, "%sfor (int c = 1; c <= %d; ++c) {\n", indent2, last)
	fmt.Fprintf(w, "%sQString pinName = QString(\"%%1%%2\").arg(rows[r]).arg(c);\n\n", indent3)

	fmt.Fprintf(w, "%s// the four corner balls are not populated\n", indent3)
	fmt.Fprintf(w, "%sbool isCorner = (r == 0 && c == 1) ||                       // A1\n", indent3)
	fmt.Fprintf(w, "%s               (r == 0 && c == %d) ||                      // A%d\n", indent3, last, last)
	fmt.Fprintf(w, "%s               (r == rows.length() - 1 && c == 1) ||       // %s1\n", indent3, lastRow)
	fmt.Fprintf(w, "%s               (r == rows.length() - 1 && c == %d);        // %s%d\n\n", indent3, last, lastRow, last)

	fmt.Fprintf(w, "%sif (!isCorner && !m_pinFunctions.contains(pinName)) {\n", indent3)
	fmt.Fprintf(w, "%sm_pinFunctions[pinName] = basicFunctions;\n", indent4)
	fmt.Fprintf(w, "%sm_defaultFunctions[pinName] = %s;\n", indent4, cppString(types.DefaultFunction))
	fmt.Fprintf(w, "%s}\n", indent3)
	fmt.Fprintf(w, "%s}\n", indent2)
	fmt.Fprintf(w, "%s}\n", indent)
}
