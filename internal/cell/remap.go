// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cell

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Remap renames raw function tokens to the names used by the board support
// code. Tokens without an entry map to themselves.
type Remap struct {
	m map[string]string
}

// defaultRemap holds the built-in renames for the dual-function CR/CV pads.
var defaultRemap = map[string]string{
	"CR_4WTMS": "CV_2WTMS_CR_4WTMS",
	"CR_4WTCK": "CV_2WTCK_CR_4WTCK",
	"CR_4WTDI": "CV_SCL0__CR_4WTDI",
	"CR_4WTDO": "CV_SDA0__CR_4WTDO",
	"CR_SCL0":  "CV_4WTDI_CR_SCL0",
	"CR_SDA0":  "CV_4WTMS_CR_SDA0",
	"CR_2WTMS": "CV_4WTDO_CR_2WTMS",
	"CR_2WTCK": "CV_4WTCK_CR_2WTCK",
}

// DefaultRemap returns the built-in rename table.
func DefaultRemap() Remap {
	return NewRemap(defaultRemap)
}

// NewRemap copies m into a Remap. Later changes to m are not visible.
func NewRemap(m map[string]string) Remap {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Remap{m: c}
}

// LoadRemap reads a YAML mapping of raw token to renamed token.
func LoadRemap(path string) (Remap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Remap{}, fmt.Errorf("reading remap file: %w", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Remap{}, fmt.Errorf("parsing remap file %s: %w", path, err)
	}
	return NewRemap(m), nil
}

// Apply returns the renamed token, or token itself when it has no entry.
func (r Remap) Apply(token string) string {
	if v, ok := r.m[token]; ok {
		return v
	}
	return token
}

// Keys returns the raw tokens that are renamed.
func (r Remap) Keys() []string {
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (r Remap) Len() int {
	return len(r.m)
}
