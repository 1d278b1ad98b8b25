// Package matrix provides incidence-matrix encodings for hypergraph ingestion.
//
// A cell (i, j) that is non-zero means node i belongs to edge j. Every
// encoding implements Incidence and normalizes to coordinate form (COO)
// through ToCOO, so consumers handle one shape only:
//
//	Dense   row-major flat []float64, scanned cell by cell
//	COO     parallel row/col/val slices (val may be nil: pattern matrix)
//	CSR     compressed rows:    Indptr (rows+1), Indices (cols), Data
//	CSC     compressed columns: Indptr (cols+1), Indices (rows), Data
//	LIL     per-row column lists with optional per-row data
//	Bitmap  one roaring bitmap of row indices per column (binary only)
//
// Only non-zero finite values count; magnitudes are not preserved downstream.
// Structural problems surface as ErrBadShape, ErrOutOfRange,
// ErrDimensionMismatch, ErrMalformed or ErrNaNInf.
package matrix
