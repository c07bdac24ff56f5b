package model

import "gonum.org/v1/gonum/mat"

// Empty is a matrix with zero rows, zero columns, or both.
// mat.Dense panics on zero-sized shapes, so subsets that select no rows and
// batches that carry no features are represented by this type instead.
type Empty struct {
	rows, cols int
}

// NewEmptyRows returns a 0×cols matrix.
func NewEmptyRows(cols int) Empty {
	return Empty{cols: cols}
}

// NewEmptyCols returns a rows×0 matrix.
func NewEmptyCols(rows int) Empty {
	return Empty{rows: rows}
}

// Dims implements mat.Matrix.
func (e Empty) Dims() (r, c int) {
	return e.rows, e.cols
}

// At implements mat.Matrix. Every index is out of range.
func (e Empty) At(i, j int) float64 {
	if e.rows == 0 {
		panic(mat.ErrRowAccess)
	}
	panic(mat.ErrColAccess)
}

// T implements mat.Matrix.
func (e Empty) T() mat.Matrix {
	return Empty{rows: e.cols, cols: e.rows}
}
