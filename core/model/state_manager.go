// Package model provides the data and state types shared by estimators:
// label constraints, datasets, the previous-model sum type used by
// incremental fitting, and thread-safe fitted-state bookkeeping.
package model

import (
	"sync"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/scigo-nb/pkg/errors"
)

// StateManager tracks the fitted state of a model in a thread-safe manner.
// Variants embed *StateManager, which makes them satisfy FittedModel.
type StateManager struct {
	mu sync.RWMutex

	id        string
	fitted    bool
	nFeatures int
	nSamples  int
}

// NewStateManager creates an unfitted StateManager with a fresh estimator id.
func NewStateManager() *StateManager {
	return &StateManager{id: uuid.NewString()}
}

// ID returns the estimator id, stable across incremental fits and clones.
func (s *StateManager) ID() string {
	return s.id
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// Observe records a successfully fitted batch: it fixes the feature
// dimensionality, adds nSamples to the running total and marks the model fitted.
func (s *StateManager) Observe(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nFeatures = nFeatures
	s.nSamples += nSamples
	s.fitted = true
}

// NFeatures returns the feature dimensionality seen during fitting, or 0.
func (s *StateManager) NFeatures() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures
}

// NSamplesSeen returns the total number of samples across all fitted batches.
func (s *StateManager) NSamplesSeen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nSamples
}

// Reset returns the state to unfitted. The id is kept.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// Clone returns an independent copy with the same id, so an incremental fit
// can build a new model without mutating the previous one.
func (s *StateManager) Clone() *StateManager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &StateManager{
		id:        s.id,
		fitted:    s.fitted,
		nFeatures: s.nFeatures,
		nSamples:  s.nSamples,
	}
}

// RequireFitted returns a NotFittedError naming modelName and method if the
// model has not been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// ModelState is a snapshot of the state, used for logging and debugging.
type ModelState struct {
	ID        string `json:"id"`
	Fitted    bool   `json:"fitted"`
	NFeatures int    `json:"n_features,omitempty"`
	NSamples  int    `json:"n_samples,omitempty"`
}

// GetState returns the current state as a ModelState.
func (s *StateManager) GetState() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ModelState{
		ID:        s.id,
		Fitted:    s.fitted,
		NFeatures: s.nFeatures,
		NSamples:  s.nSamples,
	}
}
