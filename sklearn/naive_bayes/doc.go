// Package naive_bayes provides the prediction and estimation machinery shared
// by Naive Bayes classifier variants.
//
// A variant implements two small interfaces:
//
//   - NaiveBayes: JointLogLikelihood returns, for every learned class, the
//     unnormalized log-likelihood of each input row.
//   - IncrementalFitter: FitWith updates a previous model (or starts from
//     none) with one batch of data.
//
// The package turns those into hard predictions (PredictInto, Predict),
// normalized posteriors (PredictLogProba, PredictProba), accuracy (Score) and
// single-shot, batched or streamed fitting (Fit, FitBatches, FitStream).
// Filter and SplitByClass slice a feature matrix by target class and
// ClassCounts keeps the per-class sample counts every variant needs.
//
// Classes are always ordered ascending by label. When several classes share
// the maximal score for a sample, the smallest label wins.
//
// Example:
//
//	ds, err := model.NewDataset(X, y)
//	if err != nil {
//	    return err
//	}
//	nb, err := naive_bayes.Fit(estimator, model.NoPrior[*MyNB](), ds)
//	if err != nil {
//	    return err
//	}
//	labels, err := naive_bayes.Predict[string](nb, XTest)
package naive_bayes
