package naive_bayes

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/core/parallel"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
	"github.com/YuminosukeSato/scigo-nb/pkg/log"
)

// PredictLogProba returns the log posterior of every class for every row of
// X, normalized so that each row's probabilities sum to one. Columns follow
// the returned class order (ascending by label).
func PredictLogProba[L model.Label](nb NaiveBayes[L], X mat.Matrix) (*mat.Dense, []L, error) {
	const op = "naive_bayes.PredictLogProba"

	nSamples, _ := X.Dims()
	if nSamples == 0 {
		return nil, nil, errors.NewEmptyDataError(op)
	}

	table, err := scoreTable(op, log.OperationPredictProba, nb, X)
	if err != nil {
		return nil, nil, err
	}

	nClasses := len(table)
	out := mat.NewDense(nSamples, nClasses, nil)
	parallel.Rows(nSamples, func(start, end int) {
		row := make([]float64, nClasses)
		for i := start; i < end; i++ {
			for k := range table {
				row[k] = table[k].Scores[i]
			}
			normalizeLog(row)
			out.SetRow(i, row)
		}
	})
	logger().Debug("Predict proba completed",
		log.ModelNameKey, modelName(nb),
		log.OperationKey, log.OperationPredictProba,
		log.PredsKey, nSamples,
		log.ClassesKey, nClasses,
	)
	return out, table.Classes(), nil
}

// PredictProba returns exp(PredictLogProba).
func PredictProba[L model.Label](nb NaiveBayes[L], X mat.Matrix) (*mat.Dense, []L, error) {
	logProba, classes, err := PredictLogProba(nb, X)
	if err != nil {
		return nil, nil, err
	}
	logProba.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, logProba)
	return logProba, classes, nil
}

// normalizeLog turns row into log probabilities in place.
// If every score is -Inf the row becomes uniform; if some scores are +Inf
// they share the mass equally.
func normalizeLog(row []float64) {
	lse := errors.LogSumExp(row)
	switch {
	case math.IsInf(lse, -1):
		uniform := -math.Log(float64(len(row)))
		for k := range row {
			row[k] = uniform
		}
	case math.IsInf(lse, 1):
		top := 0
		for _, v := range row {
			if math.IsInf(v, 1) {
				top++
			}
		}
		share := -math.Log(float64(top))
		for k, v := range row {
			if math.IsInf(v, 1) {
				row[k] = share
			} else {
				row[k] = math.Inf(-1)
			}
		}
	default:
		for k := range row {
			row[k] -= lse
		}
	}
}

// Score returns the mean accuracy of Predict(nb, X) against y.
func Score[L model.Label](nb NaiveBayes[L], X mat.Matrix, y []L) (float64, error) {
	const op = "naive_bayes.Score"

	nSamples, _ := X.Dims()
	if len(y) != nSamples {
		return 0, errors.NewDimensionError(op, nSamples, len(y), 0)
	}
	if nSamples == 0 {
		return 0, errors.NewEmptyDataError(op)
	}

	pred := make([]L, nSamples)
	if err := PredictInto(nb, X, pred); err != nil {
		return 0, err
	}

	correct := 0
	for i := range pred {
		if pred[i] == y[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(nSamples)
	logger().Debug("Score computed",
		log.ModelNameKey, modelName(nb),
		log.OperationKey, log.OperationScore,
		log.PredsKey, nSamples,
		log.AccuracyKey, accuracy,
	)
	return accuracy, nil
}
