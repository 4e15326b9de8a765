// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/pingen/pkg/types"
)

// QueryOptions filters Retrieve results. Empty fields do not filter.
type QueryOptions struct {
	// Pin matches a pin number or a pin name exactly.
	Pin string

	// Function keeps pins that support this function.
	Function string
}

// IsEmpty reports whether the query has no filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Pin == "" && q.Function == ""
}

// Retrieve returns the stored pins matching opts in spreadsheet order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Pin, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT p.number, p.name, p.default_function, f.function
		FROM pins p
		LEFT JOIN pin_functions f ON f.pin_number = p.number
		WHERE 1=1`)

	if opts.Pin != "" {
		qb.WriteString(` AND (p.number = ? OR p.name = ?)`)
		args = append(args, opts.Pin, opts.Pin)
	}
	if opts.Function != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM pin_functions x WHERE x.pin_number = p.number AND x.function = ?)`)
		args = append(args, opts.Function)
	}
	qb.WriteString(` ORDER BY p.position, f.position`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying pins: %w", err)
	}
	defer rows.Close()

	var pins []types.Pin
	for rows.Next() {
		var (
			number, name, def string
			fn                *string
		)
		if err := rows.Scan(&number, &name, &def, &fn); err != nil {
			return nil, fmt.Errorf("scanning pin row: %w", err)
		}
		if len(pins) == 0 || pins[len(pins)-1].Number != number {
			pins = append(pins, types.Pin{Number: number, Name: name, Default: def})
		}
		if fn != nil {
			last := &pins[len(pins)-1]
			last.Functions = append(last.Functions, *fn)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading pin rows: %w", err)
	}
	return pins, nil
}

// Functions returns every stored function name in sorted order.
func (s *Store) Functions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM functions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying functions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning function row: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
