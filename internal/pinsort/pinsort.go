// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pinsort orders pin identifiers naturally: A2 before A10 before B1,
// and flat numbers (7, 12) before any lettered position.
package pinsort

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pingen/pkg/types"
)

// gridPattern matches a ball-grid position: a run of capital letters
// followed by digits. Anything after the digits is ignored.
var gridPattern = regexp.MustCompile(`^([A-Z]+)(\d+)`)

// numericPattern matches a flat pin number.
var numericPattern = regexp.MustCompile(`^\d+$`)

// groupPattern matches the letter run that names a pin's row.
var groupPattern = regexp.MustCompile(`^[A-Z]+`)

// Key is the comparable form of a pin identifier. Number holds the decimal
// digits without leading zeros, so digit runs of any length compare by value;
// an empty Number is zero.
type Key struct {
	Prefix string
	Number string
}

// Less orders keys by prefix, then by numeric value.
func (k Key) Less(o Key) bool {
	if k.Prefix != o.Prefix {
		return k.Prefix < o.Prefix
	}
	if len(k.Number) != len(o.Number) {
		return len(k.Number) < len(o.Number)
	}
	return k.Number < o.Number
}

// SortKey derives the ordering key for a pin identifier.
//
//	"A10" -> ("A", 10)
//	"12"  -> ("", 12)
//	"VDD" -> ("VDD", 0)
func SortKey(number string) Key {
	if m := gridPattern.FindStringSubmatch(number); m != nil {
		return Key{Prefix: m[1], Number: canonical(m[2])}
	}
	if numericPattern.MatchString(number) {
		return Key{Number: canonical(number)}
	}
	return Key{Prefix: number}
}

func canonical(digits string) string {
	return strings.TrimLeft(digits, "0")
}

// Sort returns a copy of pins ordered by SortKey. The sort is stable, so pins
// with equal keys keep their input order.
func Sort(pins []types.Pin) []types.Pin {
	keys := make([]Key, len(pins))
	for i, p := range pins {
		keys[i] = SortKey(p.Number)
	}

	idx := make([]int, len(pins))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].Less(keys[idx[b]])
	})

	sorted := make([]types.Pin, len(pins))
	for i, j := range idx {
		sorted[i] = pins[j]
	}
	return sorted
}

// Group returns the leading capital-letter run of a pin identifier, or ""
// for flat numbers and other identifiers that do not start with one.
func Group(number string) string {
	return groupPattern.FindString(number)
}

// Grouper tracks the letter group across a forward pass over sorted pins.
// The zero value is ready to use.
type Grouper struct {
	current string
}

// Next records number as the current pin and reports whether a blank
// separator belongs before it. A separator is due when the previous pin had
// a letter group and this pin's group differs.
func (g *Grouper) Next(number string) bool {
	group := Group(number)
	boundary := g.current != "" && group != g.current
	g.current = group
	return boundary
}
