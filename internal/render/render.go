// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes the generated C++ pin tables: the pin-number to
// pin-name initializer and the PinFunction class body.
//
// Both renderers sort pins with pinsort and separate letter groups with a
// blank line so that regenerated files diff cleanly.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pingen/internal/pinsort"
	"github.com/pdiddy/pingen/pkg/types"
)

const (
	dirPerm = 0o755
	indent  = "    "
	indent2 = indent + indent
	indent3 = indent2 + indent
	indent4 = indent3 + indent
)

// sorted orders pins for output and reports the count to log.
func sorted(pins []types.Pin, log io.Writer) []types.Pin {
	out := pinsort.Sort(pins)
	fmt.Fprintf(log, "sorted %d pins by pin number\n", len(out))
	return out
}

// cppString quotes s as a C++ string literal.
func cppString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// commentText flattens s onto one line for use in a // comment.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WriteFile creates path and fills it with render. The file is closed on
// every path; a failed render may leave a truncated file behind.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := render(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Artifact is one generated file.
type Artifact struct {
	Path   string
	Render func(io.Writer) error
}

// WriteAll writes each artifact in turn. A failure is reported to log and
// does not stop the remaining artifacts; the failures are returned joined.
func WriteAll(artifacts []Artifact, log io.Writer) error {
	var errs []error
	for i, a := range artifacts {
		if i > 0 {
			fmt.Fprintln(log, strings.Repeat("-", 20))
		}
		fmt.Fprintf(log, "generating %s...\n", a.Path)
		if err := WriteFile(a.Path, a.Render); err != nil {
			fmt.Fprintf(log, "error: %v\n", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(log, "wrote %s\n", a.Path)
	}
	return errors.Join(errs...)
}
