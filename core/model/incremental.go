package model

// FittedModel is the capability the incremental-fit orchestration needs from
// a model: the feature dimensionality it was fitted on. Embedding
// *StateManager provides it.
type FittedModel interface {
	NFeatures() int
}

// Prior is the previous model handed to an incremental fit: either absent on
// the first batch or present on every later one.
//
// The zero value is absent.
type Prior[M any] struct {
	model   M
	present bool
}

// NoPrior returns an absent Prior.
func NoPrior[M any]() Prior[M] {
	return Prior[M]{}
}

// PriorOf returns a Prior holding m.
func PriorOf[M any](m M) Prior[M] {
	return Prior[M]{model: m, present: true}
}

// Get returns the model and true when present, or the zero M and false.
func (p Prior[M]) Get() (M, bool) {
	return p.model, p.present
}

// Present reports whether a previous model exists.
func (p Prior[M]) Present() bool {
	return p.present
}
