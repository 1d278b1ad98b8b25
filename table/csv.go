// SPDX-License-Identifier: MIT
// Package: hyperlath/table
//
// csv.go — CSV ingestion. Cells stay strings; every record must have the
// same width (encoding/csv enforces it).

package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a whole CSV document into a Frame. With header=true the first
// record becomes the column labels. Leading spaces are trimmed.
func ReadCSV(r io.Reader, header bool) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	var labels []string
	if header && len(records) > 0 {
		labels, records = records[0], records[1:]
	}
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, cell := range rec {
			row[j] = cell
		}
		rows[i] = row
	}

	f, err := NewFrame(labels, rows)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return f, nil
}
