package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "GaussianNB".
	ModelNameKey = "model.name"

	// EstimatorIDKey identifies one model instance across incremental fits.
	EstimatorIDKey = "estimator.id"

	// OperationKey names the operation: "fit", "partial_fit", "predict", ...
	OperationKey = "ml.operation"

	// ComponentKey names the package emitting the record.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct class labels in a batch or model.
	ClassesKey = "data.classes"

	// BatchKey is the zero-based index of a batch within an incremental fit.
	BatchKey = "data.batch"
)

// Performance and output.
const (
	DurationMsKey = "perf.duration_ms"
	PredsKey      = "preds.count"

	// AccuracyKey records mean accuracy for evaluation operations.
	AccuracyKey = "metrics.accuracy"
)

// Error context.
const (
	ErrorCodeKey = "error.code"
)

// Standard operation values.
const (
	OperationFit          = "fit"
	OperationPartialFit   = "partial_fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationScore        = "score"
)

// Standard error codes.
const (
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorNumericFailure    = "NUMERIC_FAILURE"
	ErrorNotFitted         = "NOT_FITTED"
	ErrorPanic             = "PANIC"
	ErrorInternal          = "INTERNAL"
)
