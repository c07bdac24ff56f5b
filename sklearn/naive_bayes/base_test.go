package naive_bayes

import (
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
	"github.com/YuminosukeSato/scigo-nb/pkg/log"
)

func TestNewScoreTableSortsByClass(t *testing.T) {
	table := NewScoreTable(map[string][]float64{
		"c": {3},
		"a": {1},
		"b": {2},
	})

	assert.Equal(t, []string{"a", "b", "c"}, table.Classes())
	assert.Equal(t, []float64{1}, table[0].Scores)
	assert.Equal(t, []float64{3}, table[2].Scores)
}

func TestPredictIntoExample(t *testing.T) {
	nb := &stubNB[string]{jll: map[string][]float64{
		"a": {0.1, -5.0},
		"b": {-0.2, -1.0},
	}}
	X := mat.NewDense(2, 1, nil)
	y := make([]string, 2)

	require.NoError(t, PredictInto[string](nb, X, y))
	assert.Equal(t, []string{"a", "b"}, y)
	assert.Equal(t, 1, nb.calls)
}

func TestPredictSelectsStrictMaximum(t *testing.T) {
	tests := []struct {
		name string
		jll  map[int][]float64
		want []int
	}{
		{
			name: "single class",
			jll:  map[int][]float64{7: {-1, 0, 1}},
			want: []int{7, 7, 7},
		},
		{
			name: "negative labels and infinities",
			jll: map[int][]float64{
				-3: {math.Inf(-1), 2, -1},
				0:  {-10, math.Inf(1), -2},
				5:  {-11, 3, -0.5},
			},
			want: []int{0, 0, 5},
		},
		{
			name: "all minus infinity falls back to first class",
			jll: map[int][]float64{
				2: {math.Inf(-1)},
				1: {math.Inf(-1)},
			},
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb := &stubNB[int]{jll: tt.jll}
			n := len(tt.want)
			got, err := Predict[int](nb, mat.NewDense(n, 1, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredictTieBreakIsLowestLabel(t *testing.T) {
	nb := &stubNB[string]{jll: map[string][]float64{
		"zebra": {1.5, 0, -2},
		"apple": {1.5, -1, -2},
		"mango": {1.0, 0, -2},
	}}
	X := mat.NewDense(3, 2, nil)

	first, err := Predict[string](nb, X)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "apple"}, first)

	for i := 0; i < 50; i++ {
		again, err := Predict[string](nb, X)
		require.NoError(t, err)
		require.Equal(t, first, again, "run %d", i)
	}
}

func TestPredictIntoBufferMismatchPanics(t *testing.T) {
	nb := &stubNB[string]{jll: map[string][]float64{"a": {0, 0, 0}}}
	X := mat.NewDense(3, 1, nil)

	assert.Panics(t, func() { _ = PredictInto[string](nb, X, make([]string, 2)) })
	assert.Panics(t, func() { _ = PredictInto[string](nb, X, make([]string, 4)) })
	assert.Equal(t, 0, nb.calls, "model must not be consulted before the precondition holds")
}

func TestPredictIntoNaNFailsWholeCall(t *testing.T) {
	nb := &stubNB[string]{jll: map[string][]float64{
		"a": {0, 1, math.NaN()},
		"b": {1, math.NaN(), 0},
	}}
	X := mat.NewDense(3, 1, nil)
	y := []string{"keep", "keep", "keep"}

	err := PredictInto[string](nb, X, y)
	require.Error(t, err)
	assert.True(t, errors.IsNumericFailure(err))
	assert.True(t, errors.IsInvalidInput(err))

	var scoreErr *errors.ScoreOrderError
	require.True(t, errors.As(err, &scoreErr))
	assert.Equal(t, 1, scoreErr.Sample)
	assert.Equal(t, "b", scoreErr.Class)

	assert.Equal(t, []string{"keep", "keep", "keep"}, y, "no partial output on failure")
}

func TestPredictScoreLengthMismatch(t *testing.T) {
	nb := &stubNB[int]{jll: map[int][]float64{
		0: {0, 1},
		1: {0},
	}}

	_, err := Predict[int](nb, mat.NewDense(2, 1, nil))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "scores of class 1")
}

func TestPredictEmptyClassSet(t *testing.T) {
	nb := &stubNB[int]{jll: map[int][]float64{}}

	_, err := Predict[int](nb, mat.NewDense(1, 1, nil))
	var notFitted *errors.NotFittedError
	require.True(t, errors.As(err, &notFitted))
	assert.Equal(t, "Predict", notFitted.Method)
}

func TestPredictPropagatesModelError(t *testing.T) {
	cause := errors.New("model exploded")
	nb := &stubNB[int]{err: cause}

	_, err := Predict[int](nb, mat.NewDense(1, 1, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "joint log-likelihood")
}

func TestPredictZeroSamples(t *testing.T) {
	nb := &stubNB[int]{jll: map[int][]float64{0: {}, 1: {}}}

	got, err := Predict[int](nb, model.NewEmptyRows(3))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPredictLargeInputMatchesSequentialArgmax(t *testing.T) {
	const n = 5000
	jll := map[int][]float64{0: make([]float64, n), 1: make([]float64, n), 2: make([]float64, n)}
	for i := 0; i < n; i++ {
		jll[0][i] = math.Sin(float64(i))
		jll[1][i] = math.Cos(float64(i))
		jll[2][i] = float64(i%7) / 7
	}
	nb := &stubNB[int]{jll: jll}

	got, err := Predict[int](nb, mat.NewDense(n, 1, nil))
	require.NoError(t, err)

	table := NewScoreTable(jll)
	for i := 0; i < n; i++ {
		best := 0
		for k := 1; k < 3; k++ {
			if jll[k][i] > jll[best][i] {
				best = k
			}
		}
		require.Equal(t, table[best].Class, got[i], "sample %d", i)
	}
}

func TestPredictionsAreLearnedClasses(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		0, 0,
		0.5, 0.2,
		5, 5,
		5.5, 4.8,
		-5, 5,
		-4.5, 5.2,
	})
	y := []string{"origin", "origin", "ne", "ne", "nw", "nw"}

	nb, err := Fit(&centroidEstimator[string]{}, model.NoPrior[*centroidNB[string]](), mustDataset(X, y))
	require.NoError(t, err)

	XTest := mat.NewDense(4, 2, []float64{
		0.1, 0.1,
		6, 6,
		-6, 6,
		100, -100,
	})
	got, err := Predict[string](nb, XTest)
	require.NoError(t, err)
	assert.Equal(t, []string{"origin", "ne", "nw"}, got[:3])
	assert.Contains(t, []string{"origin", "ne", "nw"}, got[3])
}

func ExamplePredictInto() {
	nb := &stubNB[string]{jll: map[string][]float64{
		"a": {0.1, -5.0},
		"b": {-0.2, -1.0},
	}}
	y := make([]string, 2)
	if err := PredictInto[string](nb, mat.NewDense(2, 1, nil), y); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(y)
	// Output: [a b]
}

func TestPredictRecoversVariantPanic(t *testing.T) {
	nb := &stubNB[string]{panicWith: mat.ErrShape}
	X := mat.NewDense(2, 1, nil)
	y := []string{"keep", "keep"}

	var err error
	require.NotPanics(t, func() { err = PredictInto[string](nb, X, y) })
	require.Error(t, err)

	var panicErr *errors.PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, mat.ErrShape, panicErr.PanicValue)
	assert.Equal(t, "naive_bayes.PredictInto", panicErr.Operation)
	assert.Equal(t, []string{"keep", "keep"}, y)

	_, _, err = PredictProba[string](nb, X)
	assert.True(t, errors.As(err, &panicErr))
}

func TestPredictBufferMismatchStillPanicsWithPanickingVariant(t *testing.T) {
	nb := &stubNB[string]{panicWith: "boom"}
	X := mat.NewDense(2, 1, nil)

	assert.PanicsWithValue(t,
		"naive_bayes.PredictInto: output buffer holds 1 labels for 2 samples",
		func() { _ = PredictInto[string](nb, X, make([]string, 1)) })
	assert.Equal(t, 0, nb.calls)
}

func TestPredictLogging(t *testing.T) {
	t.Run("silent at the default level", func(t *testing.T) {
		provider, buffer := log.NewTestLoggerProvider(log.LevelWarn)
		log.SetProvider(provider)
		t.Cleanup(func() { log.SetProvider(log.NewZerologProvider(io.Discard, log.LevelError)) })

		nb := &stubNB[string]{jll: map[string][]float64{"a": {math.NaN()}, "b": {0}}}
		_, err := Predict[string](nb, mat.NewDense(1, 1, nil))
		require.Error(t, err)
		assert.Empty(t, buffer.String())
	})

	t.Run("rejected scores carry an error code", func(t *testing.T) {
		logs := captureLogs(t)

		nb := &stubNB[string]{jll: map[string][]float64{"a": {math.NaN()}, "b": {0}}}
		_, err := Predict[string](nb, mat.NewDense(1, 1, nil))
		require.Error(t, err)

		assert.True(t, logs.ContainsMessage("Joint log-likelihood rejected"))
		assert.True(t, logs.ContainsField(log.ErrorCodeKey, log.ErrorNumericFailure))
		assert.True(t, logs.ContainsField(log.OperationKey, log.OperationPredict))
	})

	t.Run("successful calls record the operation", func(t *testing.T) {
		logs := captureLogs(t)

		nb := &stubNB[int]{jll: map[int][]float64{0: {1, 0}, 1: {0, 1}}}
		X := mat.NewDense(2, 1, nil)
		_, err := Predict[int](nb, X)
		require.NoError(t, err)
		_, _, err = PredictProba[int](nb, X)
		require.NoError(t, err)
		_, err = Score[int](nb, X, []int{0, 0})
		require.NoError(t, err)

		assert.True(t, logs.ContainsField(log.OperationKey, log.OperationPredict))
		assert.True(t, logs.ContainsField(log.OperationKey, log.OperationPredictProba))
		assert.True(t, logs.ContainsField(log.OperationKey, log.OperationScore))
		assert.True(t, logs.ContainsField(log.PredsKey, float64(2)))
		assert.True(t, logs.ContainsField(log.AccuracyKey, 0.5))
	})
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not fitted", err: errors.NewNotFittedError("m", "Predict"), want: log.ErrorNotFitted},
		{name: "empty data", err: errors.NewEmptyDataError("op"), want: log.ErrorEmptyData},
		{name: "nan score", err: errors.NewScoreOrderError("op", 0, "a", math.NaN()), want: log.ErrorNumericFailure},
		{name: "dimension", err: errors.NewDimensionError("op", 1, 2, 1), want: log.ErrorDimensionMismatch},
		{name: "value", err: errors.NewValueError("op", "bad"), want: log.ErrorInvalidInput},
		{name: "panic", err: errors.SafeExecute("op", func() error { panic("x") }), want: log.ErrorPanic},
		{name: "other", err: errors.New("disk on fire"), want: log.ErrorInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(errors.Wrap(tt.err, "context")))
		})
	}
}
