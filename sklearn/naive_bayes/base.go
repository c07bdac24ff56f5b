package naive_bayes

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/core/parallel"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
	"github.com/YuminosukeSato/scigo-nb/pkg/log"
)

// NaiveBayes is implemented by fitted Naive Bayes variants.
type NaiveBayes[L model.Label] interface {
	// JointLogLikelihood returns, for every learned class, a slice with one
	// unnormalized log-likelihood per row of X. X is borrowed for the call.
	JointLogLikelihood(X mat.Matrix) (map[L][]float64, error)
}

// ClassScores holds the scores of one class for every sample.
type ClassScores[L model.Label] struct {
	Class  L
	Scores []float64
}

// ScoreTable is a joint log-likelihood map laid out as a list sorted
// ascending by class label.
type ScoreTable[L model.Label] []ClassScores[L]

// NewScoreTable sorts jll into a ScoreTable. The score slices are shared, not copied.
func NewScoreTable[L model.Label](jll map[L][]float64) ScoreTable[L] {
	table := make(ScoreTable[L], 0, len(jll))
	for class, scores := range jll {
		table = append(table, ClassScores[L]{Class: class, Scores: scores})
	}
	slices.SortFunc(table, func(a, b ClassScores[L]) int {
		return cmp.Compare(a.Class, b.Class)
	})
	return table
}

// Classes returns the class labels in table order.
func (t ScoreTable[L]) Classes() []L {
	classes := make([]L, len(t))
	for k, cs := range t {
		classes[k] = cs.Class
	}
	return classes
}

// Argmax returns the table index of the class with the maximal score for
// sample i. Ties go to the lowest index. Scores must not contain NaN.
func (t ScoreTable[L]) Argmax(i int) int {
	best := 0
	bestScore := t[0].Scores[i]
	for k := 1; k < len(t); k++ {
		if s := t[k].Scores[i]; s > bestScore {
			best, bestScore = k, s
		}
	}
	return best
}

// Validate checks that every class has exactly nSamples scores and that no
// score is NaN. A NaN is reported at the lowest sample index, then the lowest class.
func (t ScoreTable[L]) Validate(op string, nSamples int) error {
	for _, cs := range t {
		if len(cs.Scores) != nSamples {
			return errors.Wrapf(errors.NewDimensionError(op, nSamples, len(cs.Scores), 0),
				"scores of class %v", cs.Class)
		}
	}

	sample, class := -1, -1
	for k, cs := range t {
		if i, found := errors.HasNaN(cs.Scores); found && (sample < 0 || i < sample) {
			sample, class = i, k
		}
	}
	if sample >= 0 {
		return errors.NewScoreOrderError(op, sample, t[class].Class, t[class].Scores[sample])
	}
	return nil
}

// scoreTable obtains and validates the joint log-likelihood of X.
// operation is the ml.operation value attached to log records.
func scoreTable[L model.Label](op, operation string, nb NaiveBayes[L], X mat.Matrix) (ScoreTable[L], error) {
	nSamples, _ := X.Dims()
	lg := logger().With(
		log.ModelNameKey, modelName(nb),
		log.OperationKey, operation,
	)

	var jll map[L][]float64
	err := errors.SafeExecute(op, func() (err error) {
		jll, err = nb.JointLogLikelihood(X)
		return err
	})
	if err != nil {
		err = errors.Wrapf(err, "%s: joint log-likelihood", op)
		lg.Debug("Joint log-likelihood failed", err, log.ErrorCodeKey, errorCode(err))
		return nil, err
	}
	if len(jll) == 0 {
		err = errors.NewNotFittedError(modelName(nb), "Predict")
		lg.Debug("Joint log-likelihood failed", err, log.ErrorCodeKey, errorCode(err))
		return nil, err
	}

	table := NewScoreTable(jll)
	if err := table.Validate(op, nSamples); err != nil {
		lg.Debug("Joint log-likelihood rejected", err,
			log.ErrorCodeKey, errorCode(err),
			log.SamplesKey, nSamples,
			log.ClassesKey, len(table),
		)
		return nil, err
	}
	return table, nil
}

// PredictInto writes the most probable class of every row of X into y.
//
// len(y) must equal the number of rows of X; otherwise PredictInto panics.
// A NaN score fails the whole call with an error classified as numeric
// failure, and y is left untouched.
func PredictInto[L model.Label](nb NaiveBayes[L], X mat.Matrix, y []L) error {
	const op = "naive_bayes.PredictInto"

	nSamples, _ := X.Dims()
	if len(y) != nSamples {
		panic(fmt.Sprintf("%s: output buffer holds %d labels for %d samples", op, len(y), nSamples))
	}

	table, err := scoreTable(op, log.OperationPredict, nb, X)
	if err != nil {
		return err
	}

	parallel.Rows(nSamples, func(start, end int) {
		for i := start; i < end; i++ {
			y[i] = table[table.Argmax(i)].Class
		}
	})
	logger().Debug("Predict completed",
		log.ModelNameKey, modelName(nb),
		log.OperationKey, log.OperationPredict,
		log.PredsKey, nSamples,
		log.ClassesKey, len(table),
	)
	return nil
}

// Predict returns the most probable class of every row of X.
func Predict[L model.Label](nb NaiveBayes[L], X mat.Matrix) ([]L, error) {
	nSamples, _ := X.Dims()
	y := make([]L, nSamples)
	if err := PredictInto(nb, X, y); err != nil {
		return nil, err
	}
	return y, nil
}

func modelName(v any) string {
	return fmt.Sprintf("%T", v)
}

// errorCode classifies err for the error.code log attribute.
func errorCode(err error) string {
	var notFitted *errors.NotFittedError
	var dimErr *errors.DimensionError
	var panicErr *errors.PanicError
	switch {
	case errors.As(err, &notFitted):
		return log.ErrorNotFitted
	case errors.As(err, &panicErr):
		return log.ErrorPanic
	case errors.Is(err, errors.ErrEmptyData):
		return log.ErrorEmptyData
	case errors.IsNumericFailure(err):
		return log.ErrorNumericFailure
	case errors.As(err, &dimErr):
		return log.ErrorDimensionMismatch
	case errors.IsInvalidInput(err):
		return log.ErrorInvalidInput
	default:
		return log.ErrorInternal
	}
}

func logger() log.Logger {
	return log.GetLoggerWithName("naive_bayes")
}
