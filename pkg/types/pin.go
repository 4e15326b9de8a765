// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultFunction is the function assumed for any pin whose description
// yields nothing better.
const DefaultFunction = "GPIO"

// Pin holds one physical pin as read from the pin-definition spreadsheet.
type Pin struct {
	// Number is the package position code (e.g. "A2") or flat pin number (e.g. "14").
	Number string `json:"number" yaml:"number"`

	// Name is the canonical pad name. Alternate names after a "___" separator
	// are dropped.
	Name string `json:"name" yaml:"name"`

	// Functions lists the supported functions in description order, without
	// duplicates. It always contains Default.
	Functions []string `json:"functions" yaml:"functions"`

	// Default is the function selected at power-on/reset.
	Default string `json:"default" yaml:"default"`
}

// HasFunction reports whether fn is one of the pin's supported functions.
func (p Pin) HasFunction(fn string) bool {
	for _, f := range p.Functions {
		if f == fn {
			return true
		}
	}
	return false
}
