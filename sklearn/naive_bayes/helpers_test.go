package naive_bayes

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
)

// stubNB returns a fixed joint log-likelihood.
type stubNB[L model.Label] struct {
	jll       map[L][]float64
	err       error
	panicWith any
	calls     int
}

func (s *stubNB[L]) JointLogLikelihood(X mat.Matrix) (map[L][]float64, error) {
	s.calls++
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.jll, s.err
}

// centroidNB is an additive test variant: it keeps per-class counts and
// feature sums and scores a row by its log prior minus half the squared
// distance to the class centroid.
type centroidNB[L model.Label] struct {
	*model.StateManager
	counts *ClassCounts[L]
	sums   map[L][]float64
}

func (m *centroidNB[L]) JointLogLikelihood(X mat.Matrix) (map[L][]float64, error) {
	if err := m.RequireFitted("centroidNB", "JointLogLikelihood"); err != nil {
		return nil, err
	}
	nSamples, nFeatures := X.Dims()
	if nFeatures != m.NFeatures() {
		return nil, errors.NewDimensionError("centroidNB.JointLogLikelihood", m.NFeatures(), nFeatures, 1)
	}

	priors := m.counts.LogPriors()
	jll := make(map[L][]float64, m.counts.Len())
	for k, class := range m.counts.Classes() {
		n := float64(m.counts.Count(class))
		scores := make([]float64, nSamples)
		for i := 0; i < nSamples; i++ {
			dist := 0.0
			for j := 0; j < nFeatures; j++ {
				diff := X.At(i, j) - m.sums[class][j]/n
				dist += diff * diff
			}
			scores[i] = priors[k] - 0.5*dist
		}
		jll[class] = scores
	}
	return jll, nil
}

type centroidEstimator[L model.Label] struct {
	calls     int
	sawPrior  []bool
	sawLabels [][]L
	failWith  error
	panicWith any
}

func (e *centroidEstimator[L]) FitWith(prior model.Prior[*centroidNB[L]], ds *model.Dataset[L]) (*centroidNB[L], error) {
	e.calls++
	e.sawPrior = append(e.sawPrior, prior.Present())
	e.sawLabels = append(e.sawLabels, ds.Labels())
	if e.failWith != nil {
		return nil, e.failWith
	}
	if e.panicWith != nil {
		panic(e.panicWith)
	}

	next := &centroidNB[L]{
		StateManager: model.NewStateManager(),
		counts:       CountClasses[L](nil),
		sums:         make(map[L][]float64),
	}
	if prev, ok := prior.Get(); ok {
		next.StateManager = prev.Clone()
		next.counts = prev.counts
		for class, sum := range prev.sums {
			next.sums[class] = append([]float64(nil), sum...)
		}
	}

	subsets, err := SplitByClass(ds)
	if err != nil {
		return nil, err
	}
	for _, subset := range subsets {
		rows, cols := subset.Records.Dims()
		acc, ok := next.sums[subset.Class]
		if !ok {
			acc = make([]float64, cols)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				acc[j] += subset.Records.At(i, j)
			}
		}
		next.sums[subset.Class] = acc
	}
	next.counts = next.counts.Merge(CountClasses(ds.Targets()))
	next.Observe(ds.NFeatures(), ds.NSamples())
	return next, nil
}

// wrongDimEstimator reports a feature count that disagrees with the batch.
type wrongDimEstimator struct{}

func (wrongDimEstimator) FitWith(prior model.Prior[*model.StateManager], ds *model.Dataset[int]) (*model.StateManager, error) {
	s := model.NewStateManager()
	s.Observe(ds.NFeatures()+1, ds.NSamples())
	return s, nil
}

func mustDataset[L model.Label](X mat.Matrix, y []L) *model.Dataset[L] {
	ds, err := model.NewDataset(X, y)
	if err != nil {
		panic(err)
	}
	return ds
}
