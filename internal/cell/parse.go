// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cell parses the multi-line "function select" descriptions found in
// pin-definition spreadsheets into an ordered function list and a default.
//
// A typical cell looks like:
//
//	function select
//	0 : XGPIO2_3
//	1 : UART0_TX (default)
//	Others : reserved
package cell

import (
	"strings"

	"github.com/pdiddy/pingen/pkg/types"
)

const (
	headerMarker  = "function select"
	othersMarker  = "Others :"
	defaultMarker = "(default)"

	// gpioFamily marks the generic GPIO functions that pins fall back to at
	// reset when the description does not say otherwise.
	gpioFamily = "XGPIO"
)

// Parser turns description cells into function lists.
type Parser struct {
	remap Remap
}

// NewParser returns a Parser that renames tokens through remap.
func NewParser(remap Remap) *Parser {
	return &Parser{remap: remap}
}

// Parse extracts the supported functions and the default function from a
// description cell. The returned list is never empty, has no duplicates, and
// always contains the default.
func (p *Parser) Parse(cell string) ([]string, string) {
	var functions []string
	def := ""
	explicit := false

	for _, line := range splitLines(cell) {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, headerMarker) || strings.Contains(line, othersMarker) {
			continue
		}

		_, info, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		info = strings.TrimSpace(info)

		if strings.Contains(info, defaultMarker) {
			name := p.token(strings.ReplaceAll(info, defaultMarker, ""))
			if name == "" {
				continue
			}
			functions = appendUnique(functions, name)
			def = name
			explicit = true
			continue
		}

		if name := p.token(info); name != "" {
			functions = appendUnique(functions, name)
		}
	}

	if !explicit && len(functions) > 0 {
		def = functions[0]
		for _, f := range functions {
			if strings.Contains(f, gpioFamily) {
				def = f
				break
			}
		}
	}

	if len(functions) == 0 {
		return []string{types.DefaultFunction}, types.DefaultFunction
	}

	return appendUnique(functions, def), def
}

// token normalizes one function description: "XGPIO[3]" becomes "XGPIO_3",
// then the remap table is applied.
func (p *Parser) token(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "[", "_")
	s = strings.ReplaceAll(s, "]", "")
	return p.remap.Apply(s)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

// splitLines breaks s at any line boundary (\n, \r\n, \r, \v, \f, and the
// Unicode line and paragraph separators). Empty lines are dropped.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
