package naive_bayes

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/core/parallel"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
)

// Filter returns a new matrix holding the rows of X whose target equals
// label, in their original order and with all columns.
//
// When no row matches, the result is a valid 0×cols matrix (model.Empty),
// not an error. A matrix without columns yields matches×0. Rare classes can legitimately produce it, so callers check the
// row count before computing statistics.
func Filter[L model.Label](X mat.Matrix, y []L, label L) (mat.Matrix, error) {
	const op = "naive_bayes.Filter"

	rows, cols := X.Dims()
	if len(y) != rows {
		return nil, errors.NewDimensionError(op, rows, len(y), 0)
	}

	var index []int
	for i, target := range y {
		if target == label {
			index = append(index, i)
		}
	}
	if len(index) == 0 {
		return model.NewEmptyRows(cols), nil
	}
	if cols == 0 {
		return model.NewEmptyCols(len(index)), nil
	}

	subset := mat.NewDense(len(index), cols, nil)
	raw, isRaw := X.(mat.RawRowViewer)
	parallel.Rows(len(index), func(start, end int) {
		for i := start; i < end; i++ {
			r := index[i]
			if isRaw {
				subset.SetRow(i, raw.RawRowView(r))
				continue
			}
			for j := 0; j < cols; j++ {
				subset.Set(i, j, X.At(r, j))
			}
		}
	})
	return subset, nil
}

// ClassSubset is the slice of a dataset belonging to one class.
type ClassSubset[L model.Label] struct {
	Class   L
	Records mat.Matrix
}

// SplitByClass filters ds once per distinct label, in ascending label order.
// Every subset is non-empty.
func SplitByClass[L model.Label](ds *model.Dataset[L]) ([]ClassSubset[L], error) {
	labels := ds.Labels()
	subsets := make([]ClassSubset[L], 0, len(labels))
	for _, label := range labels {
		records, err := Filter(ds.Records(), ds.Targets(), label)
		if err != nil {
			return nil, err
		}
		subsets = append(subsets, ClassSubset[L]{Class: label, Records: records})
	}
	return subsets, nil
}
