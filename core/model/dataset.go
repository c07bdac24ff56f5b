package model

import (
	"fmt"

	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset pairs a feature matrix (n_samples × n_features) with a target vector
// of length n_samples. It borrows both; callers must not mutate them while the
// dataset is in use.
type Dataset[L Label] struct {
	records mat.Matrix
	targets []L
	labels  []L
}

// NewDataset validates that records and targets describe the same samples.
func NewDataset[L Label](records mat.Matrix, targets []L) (*Dataset[L], error) {
	if records == nil {
		return nil, errors.NewValueError("model.NewDataset", "feature matrix is nil")
	}
	rows, _ := records.Dims()
	if rows != len(targets) {
		return nil, errors.NewDimensionError("model.NewDataset", rows, len(targets), 0)
	}
	return &Dataset[L]{
		records: records,
		targets: targets,
		labels:  UniqueLabels(targets),
	}, nil
}

// Records returns the feature matrix.
func (d *Dataset[L]) Records() mat.Matrix {
	return d.records
}

// Targets returns the target vector.
func (d *Dataset[L]) Targets() []L {
	return d.targets
}

// NSamples returns the number of rows.
func (d *Dataset[L]) NSamples() int {
	return len(d.targets)
}

// NFeatures returns the number of columns.
func (d *Dataset[L]) NFeatures() int {
	_, c := d.records.Dims()
	return c
}

// Labels returns the distinct target labels in ascending order. This is the
// canonical class ordering variants use to lay out per-class storage.
// The returned slice is shared; do not modify it.
func (d *Dataset[L]) Labels() []L {
	return d.labels
}

// Concat stacks datasets vertically, in order. All parts must have the same
// number of features. Empty parts are skipped.
func Concat[L Label](parts ...*Dataset[L]) (*Dataset[L], error) {
	if len(parts) == 0 {
		return nil, errors.NewValueError("model.Concat", "no datasets to concatenate")
	}

	for i, p := range parts {
		if p == nil {
			return nil, errors.NewValueError("model.Concat", fmt.Sprintf("part %d is nil", i))
		}
	}

	nFeatures := parts[0].NFeatures()
	total := 0
	for i, p := range parts {
		if p.NFeatures() != nFeatures {
			return nil, errors.Wrapf(
				errors.NewDimensionError("model.Concat", nFeatures, p.NFeatures(), 1),
				"part %d", i)
		}
		total += p.NSamples()
	}

	if total == 0 {
		return NewDataset[L](NewEmptyRows(nFeatures), nil)
	}

	targets := make([]L, 0, total)
	if nFeatures == 0 {
		for _, p := range parts {
			targets = append(targets, p.targets...)
		}
		return NewDataset(NewEmptyCols(total), targets)
	}

	records := mat.NewDense(total, nFeatures, nil)
	offset := 0
	for _, p := range parts {
		for i := 0; i < p.NSamples(); i++ {
			for j := 0; j < nFeatures; j++ {
				records.Set(offset+i, j, p.records.At(i, j))
			}
		}
		targets = append(targets, p.targets...)
		offset += p.NSamples()
	}
	return NewDataset[L](records, targets)
}
