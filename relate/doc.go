// Package relate turns oracle distances into biological relatedness
// signals: the Average Shortest Path Length (ASPL) of a pathway's gene
// set, and a one-threshold classifier labeling gene pairs as related
// or unrelated by their ASPL.
//
// What
//
//   - PathwayASPL queries the oracle for every unordered pair of a gene
//     set and returns the arithmetic mean plus the per-pair records.
//   - Classifier.Fit places the threshold halfway between the mean
//     distance of known-related and known-unrelated pairs; Predict
//     labels a pair related iff its distance ≤ threshold.
//   - Evaluate compares predictions against ground truth and reports
//     precision, recall and F1.
//
// Errors
//
//   - ErrTooFewGenes     ASPL is undefined for fewer than two genes.
//   - ErrNoTrainingData  Fit needs at least one pair on each side.
//   - ErrNotFitted       Predict before Fit.
//   - ErrLengthMismatch  Evaluate on unequal label vectors.
package relate
