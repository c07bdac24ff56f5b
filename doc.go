// Package scigonb is the shared core for Naive Bayes classifiers in Go.
//
// It provides the pieces every variant (Gaussian, multinomial, Bernoulli, ...)
// needs and none of them should reimplement: turning per-class joint
// log-likelihoods into predictions, orchestrating incremental fitting over
// batches, and slicing a feature matrix by target class.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/scigo-nb/core/model"
//	    "github.com/YuminosukeSato/scigo-nb/sklearn/naive_bayes"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	    ds, err := model.NewDataset(X, []string{"a", "b", "a"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    nb, err := naive_bayes.Fit(myEstimator, model.NoPrior[*MyNB](), ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    labels, err := naive_bayes.Predict[string](nb, X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predictions:", labels)
//	}
//
// # Packages
//
//   - sklearn/naive_bayes: Predictor, Estimator orchestration, class filter
//   - core/model: Labels, datasets, previous-model handling, fitted state
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Error kinds and typed errors
//   - pkg/log: Structured logging backed by zerolog
//
// # Performance
//
// Row-wise work (argmax over classes, class filtering) is split across
// goroutines once the input exceeds parallel.DefaultThreshold rows.
//
// # License
//
// Released under the MIT License.
package scigonb
