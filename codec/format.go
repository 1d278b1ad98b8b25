// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// format.go — format names, extension sniffing and the Decode dispatcher.

package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names an input syntax.
type Format string

// Supported formats. FormatAuto defers to the file extension.
const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatYAML, FormatHCL, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnknownFormat)
	}
}

// Decode reads r in format f. FormatAuto resolves through FormatFromPath(name);
// name is otherwise used in diagnostics only.
func Decode(r io.Reader, f Format, name string, opts ...Option) (*Document, error) {
	if f == FormatAuto {
		var err error
		if f, err = FormatFromPath(name); err != nil {
			return nil, fmt.Errorf("Decode: %w", err)
		}
	}

	switch f {
	case FormatYAML:
		return DecodeYAML(r, opts...)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("Decode(%s): %w", name, err)
		}
		return DecodeHCL(src, name)
	case FormatCSV:
		return DecodeCSV(r, opts...)
	default:
		return nil, fmt.Errorf("Decode(%q): %w", f, ErrUnknownFormat)
	}
}
