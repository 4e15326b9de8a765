// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/pingen/internal/pinsort"
	"github.com/pdiddy/pingen/pkg/types"
)

// Mappings writes MainWindow::initializePinNameMappings, which maps each pin
// number to its pad name.
func Mappings(w io.Writer, pins []types.Pin, log io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "void MainWindow::initializePinNameMappings()")
	fmt.Fprintln(bw, "{")
	fmt.Fprintln(bw, indent+"// BGA pin mappings (alphanumeric), generated and sorted by pingen")

	var g pinsort.Grouper
	for _, p := range sorted(pins, log) {
		if g.Next(p.Number) {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%sm_pinNameMappings[%s] = %s;\n", indent, cppString(p.Number), cppString(p.Name))
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
