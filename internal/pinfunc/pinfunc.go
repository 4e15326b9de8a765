// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pinfunc answers the same questions as the generated PinFunction
// class: which functions a pin supports, its default, and the macro name of
// a function. Lookups are keyed by pin name. Pins missing from the table are
// filled from the QFN and BGA fallback layouts.
package pinfunc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/pingen/pkg/types"
)

const (
	// QFNPinCount is the highest flat pin number given fallback functions.
	QFNPinCount = 88

	// BGARows are the ball-grid row letters. "I" is not used.
	BGARows = "ABCDEFGHJKLMNOPQR"

	// BGAColumns is the number of ball-grid columns.
	BGAColumns = 15
)

// BasicFunctions are given to fallback pins.
var BasicFunctions = []string{"GPIO", "ADC", "PWM", "I2C", "UART", "SPI"}

// QFNPins returns "1" through "88".
func QFNPins() []string {
	pins := make([]string, 0, QFNPinCount)
	for i := 1; i <= QFNPinCount; i++ {
		pins = append(pins, strconv.Itoa(i))
	}
	return pins
}

// IsBGACorner reports whether row r (zero-based) and column c (one-based)
// is one of the four grid corners, which have no ball.
func IsBGACorner(r, c int) bool {
	last := len(BGARows) - 1
	return (r == 0 || r == last) && (c == 1 || c == BGAColumns)
}

// BGAPins returns every grid position except the four corners, row by row.
func BGAPins() []string {
	pins := make([]string, 0, len(BGARows)*BGAColumns-4)
	for r := 0; r < len(BGARows); r++ {
		for c := 1; c <= BGAColumns; c++ {
			if IsBGACorner(r, c) {
				continue
			}
			pins = append(pins, fmt.Sprintf("%c%d", BGARows[r], c))
		}
	}
	return pins
}

// Functions holds per-pin function data in the layout of the generated code.
type Functions struct {
	functions map[string][]string
	defaults  map[string]string
	macros    map[string]string
}

// New indexes pins by name and then fills the fallback layouts. A later pin
// with the same name replaces an earlier one, as in the generated code.
// Fallback entries never replace a name taken from the table.
func New(pins []types.Pin) *Functions {
	f := &Functions{
		functions: make(map[string][]string),
		defaults:  make(map[string]string),
		macros:    make(map[string]string),
	}

	for _, p := range pins {
		f.functions[p.Name] = append([]string(nil), p.Functions...)
		f.defaults[p.Name] = p.Default
		for _, fn := range p.Functions {
			f.macros[fn] = fn
		}
	}

	for _, name := range QFNPins() {
		f.fill(name)
	}
	for _, name := range BGAPins() {
		f.fill(name)
	}
	return f
}

func (f *Functions) fill(name string) {
	if _, ok := f.functions[name]; ok {
		return
	}
	f.functions[name] = append([]string(nil), BasicFunctions...)
	f.defaults[name] = types.DefaultFunction
}

// Known reports whether pin has an entry, from the table or a fallback.
func (f *Functions) Known(pin string) bool {
	_, ok := f.functions[pin]
	return ok
}

// SupportedFunctions returns the functions of pin, or [GPIO] for an unknown pin.
func (f *Functions) SupportedFunctions(pin string) []string {
	if fns, ok := f.functions[pin]; ok {
		return append([]string(nil), fns...)
	}
	return []string{types.DefaultFunction}
}

// DefaultFunction returns the reset function of pin, or GPIO for an unknown pin.
func (f *Functions) DefaultFunction(pin string) string {
	if d, ok := f.defaults[pin]; ok {
		return d
	}
	return types.DefaultFunction
}

// MacroName returns the macro used for fn on pin. Macro entries are keyed by
// function name but looked up as "<pin>_<fn>", so the lookup only hits when
// some function is literally named that way; otherwise the upper-cased
// function name is returned.
func (f *Functions) MacroName(pin, fn string) string {
	if m, ok := f.macros[pin+"_"+fn]; ok {
		return m
	}
	return strings.ToUpper(fn)
}

// IsSupported reports whether pin supports fn. Unknown pins support nothing.
func (f *Functions) IsSupported(pin, fn string) bool {
	for _, v := range f.functions[pin] {
		if v == fn {
			return true
		}
	}
	return false
}
