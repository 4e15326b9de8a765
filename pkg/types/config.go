// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Columns names the spreadsheet header cells that hold the pin data.
// Header matching is exact, including case and spaces.
type Columns struct {
	// PinNum is the header of the pin identifier column (default "Pin Num").
	PinNum string `json:"pin_num" yaml:"pin_num" mapstructure:"pin_num"`

	// PinName is the header of the pad name column (default "Pin Name").
	PinName string `json:"pin_name" yaml:"pin_name" mapstructure:"pin_name"`

	// Functions is the header of the multi-line function select column
	// (default "Description").
	Functions string `json:"functions" yaml:"functions" mapstructure:"functions"`
}

// Required returns the column headers in the order they are validated.
func (c Columns) Required() []string {
	return []string{c.PinNum, c.PinName, c.Functions}
}

// OutputConfig holds the generated file locations.
type OutputConfig struct {
	// Dir is the directory the generated files are written to (default ".").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Mappings is the file name of the pin-number-to-name initializer.
	Mappings string `json:"mappings" yaml:"mappings" mapstructure:"mappings"`

	// Functions is the file name of the pin function table.
	Functions string `json:"functions" yaml:"functions" mapstructure:"functions"`
}

// GenerateConfig holds settings for the generate pipeline.
type GenerateConfig struct {
	// Input is the path to the pin-definition workbook (default "pins.xlsx").
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Sheet is the zero-based index of the worksheet holding the pin table
	// (default 3, the fourth sheet).
	Sheet int `json:"sheet" yaml:"sheet" mapstructure:"sheet"`

	Columns Columns      `json:"columns" yaml:"columns" mapstructure:"columns"`
	Output  OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// RemapFile is an optional YAML file of raw-to-canonical function names
	// that replaces the built-in rename table.
	RemapFile string `json:"remap_file,omitempty" yaml:"remap_file,omitempty" mapstructure:"remap_file"`
}

// StoreConfig holds settings for the SQLite pin database.
type StoreConfig struct {
	// Path is the database file (default "pins.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}
