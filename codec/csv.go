// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// csv.go — two-column CSV reader on top of table.ReadCSV.

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/table"
)

// DecodeCSV reads r as a bipartite table. Columns default to positions 0 and
// 1 (see WithColumns); the first record is a header unless WithoutHeader.
// Column resolution happens at Convert time, so a bad selector surfaces as
// table.ErrInvalidColumns from Document.Convert.
func DecodeCSV(r io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts...)

	frame, err := table.ReadCSV(r, o.header)
	if err != nil {
		return nil, fmt.Errorf("DecodeCSV: %w: %w", ErrDecode, err)
	}

	return &Document{Input: convert.FromTable[string, string](frame, o.nodeCol, o.edgeCol)}, nil
}
