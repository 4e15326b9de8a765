// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pingen/pkg/types"
)

// Export is the on-disk form of the stored table.
type Export struct {
	Pins      []types.Pin `json:"pins" yaml:"pins"`
	Functions []string    `json:"functions" yaml:"functions"`
}

// ExportYAML writes the pins matching opts and the function set to path.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions, path string) error {
	e, err := s.export(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the pins matching opts and the function set to path.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions, path string) error {
	e, err := s.export(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) export(ctx context.Context, opts QueryOptions) (*Export, error) {
	pins, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	functions, err := s.Functions(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return &Export{Pins: pins, Functions: functions}, nil
}
