package naive_bayes

import (
	"context"
	"reflect"
	"time"

	"github.com/YuminosukeSato/scigo-nb/core/model"
	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
	"github.com/YuminosukeSato/scigo-nb/pkg/log"
)

// IncrementalFitter is implemented by the hyper-parameter side of a variant.
//
// FitWith returns a model reflecting both ds and the sufficient statistics of
// prior, if present. Implementations must not mutate the prior model. For
// additive statistics, threading FitWith over batches must match a single
// call on their concatenation.
type IncrementalFitter[M model.FittedModel, L model.Label] interface {
	FitWith(prior model.Prior[M], ds *model.Dataset[L]) (M, error)
}

// identified is implemented by models embedding *model.StateManager.
type identified interface {
	ID() string
}

// Fit validates one batch and delegates the update to est.
//
// The batch must hold at least one sample and, when prior is present, the
// same number of features the prior was fitted on; violations are classified
// as invalid input. The canonical class ordering of the batch is available to
// est through ds.Labels(). A panic inside est is returned as a
// *errors.PanicError.
func Fit[M model.FittedModel, L model.Label](est IncrementalFitter[M, L], prior model.Prior[M], ds *model.Dataset[L]) (_ M, err error) {
	const op = "naive_bayes.Fit"
	defer errors.Recover(&err, op)
	var zero M

	if ds == nil {
		return zero, errors.NewValueError(op, "dataset is nil")
	}
	if ds.NSamples() == 0 {
		return zero, errors.NewEmptyDataError(op)
	}

	operation := log.OperationFit
	if prev, ok := prior.Get(); ok {
		operation = log.OperationPartialFit
		if isNil(prev) {
			return zero, errors.NewValueError(op, "previous model is nil")
		}
		if prev.NFeatures() != ds.NFeatures() {
			return zero, errors.NewDimensionError(op, prev.NFeatures(), ds.NFeatures(), 1)
		}
	}

	classes := ds.Labels()
	lg := logger().With(
		log.ModelNameKey, modelName(est),
		log.OperationKey, operation,
	)
	lg.Debug("Fit started",
		log.SamplesKey, ds.NSamples(),
		log.FeaturesKey, ds.NFeatures(),
		log.ClassesKey, len(classes),
	)

	start := time.Now()
	fitted, err := est.FitWith(prior, ds)
	if err != nil {
		err = errors.Wrap(err, op)
		lg.Debug("Fit failed", err, log.ErrorCodeKey, errorCode(err))
		return zero, err
	}
	if got := fitted.NFeatures(); got != ds.NFeatures() {
		err = errors.NewModelError(op, "fitted model reports a different feature count",
			errors.NewDimensionError(op, ds.NFeatures(), got, 1))
		lg.Debug("Fit failed", err, log.ErrorCodeKey, errorCode(err))
		return zero, err
	}

	fields := []any{
		log.SamplesKey, ds.NSamples(),
		log.ClassesKey, len(classes),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if id, ok := any(fitted).(identified); ok {
		fields = append(fields, log.EstimatorIDKey, id.ID())
	}
	lg.Info("Fit completed", fields...)
	return fitted, nil
}

// isNil reports whether m is a nil pointer, map, slice, func, chan or interface.
func isNil(m any) bool {
	if m == nil {
		return true
	}
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// FitBatches threads the model returned by each Fit into the next one.
// The error of a failing batch names its index.
func FitBatches[M model.FittedModel, L model.Label](est IncrementalFitter[M, L], prior model.Prior[M], batches ...*model.Dataset[L]) (M, error) {
	const op = "naive_bayes.FitBatches"
	var zero M

	if len(batches) == 0 {
		return zero, errors.NewValueError(op, "no batches")
	}

	current := prior
	var fitted M
	for i, batch := range batches {
		m, err := Fit(est, current, batch)
		if err != nil {
			return zero, errors.Wrapf(err, "%s: batch %d", op, i)
		}
		fitted = m
		current = model.PriorOf(m)
	}
	return fitted, nil
}

// FitStream is FitBatches over a channel. It returns when batches is closed.
//
// On cancellation it returns ctx.Err() together with the model fitted so far
// (the zero M if no batch completed). A stream that closes without yielding a
// batch is invalid input.
func FitStream[M model.FittedModel, L model.Label](ctx context.Context, est IncrementalFitter[M, L], prior model.Prior[M], batches <-chan *model.Dataset[L]) (M, error) {
	const op = "naive_bayes.FitStream"
	var zero M

	current := prior
	fitted := zero
	n := 0
	for {
		select {
		case <-ctx.Done():
			logger().Debug("Fit stream cancelled",
				log.ModelNameKey, modelName(est),
				log.BatchKey, n,
			)
			return fitted, ctx.Err()
		case batch, ok := <-batches:
			if !ok {
				if n == 0 {
					return zero, errors.NewValueError(op, "stream closed before any batch")
				}
				return fitted, nil
			}
			m, err := Fit(est, current, batch)
			if err != nil {
				return zero, errors.Wrapf(err, "%s: batch %d", op, n)
			}
			fitted = m
			current = model.PriorOf(m)
			n++
		}
	}
}
