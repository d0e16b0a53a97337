package relate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for classifier misuse.
var (
	// ErrNoTrainingData indicates Fit received an empty side.
	ErrNoTrainingData = errors.New("relate: fit needs related and unrelated pairs")

	// ErrNotFitted indicates Predict was called before Fit.
	ErrNotFitted = errors.New("relate: classifier not fitted")

	// ErrLengthMismatch indicates Evaluate received label vectors of
	// different lengths.
	ErrLengthMismatch = errors.New("relate: label vectors differ in length")
)

// Classifier labels gene pairs as related or unrelated by comparing
// their distance against a single fitted threshold.
type Classifier struct {
	threshold float64
	fitted    bool
}

// Fit sets the threshold to the midpoint between the mean distance of
// known-related and known-unrelated pairs.
func (c *Classifier) Fit(related, unrelated []PairDistance) error {
	if len(related) == 0 || len(unrelated) == 0 {
		return fmt.Errorf("%w: related=%d unrelated=%d", ErrNoTrainingData, len(related), len(unrelated))
	}
	c.threshold = (stat.Mean(distances(related), nil) + stat.Mean(distances(unrelated), nil)) / 2
	c.fitted = true
	return nil
}

// Threshold returns the fitted threshold θ; the second result is false
// before Fit.
func (c *Classifier) Threshold() (float64, bool) {
	return c.threshold, c.fitted
}

// Predict labels each pair related iff its distance ≤ θ.
func (c *Classifier) Predict(pairs []PairDistance) ([]bool, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	out := make([]bool, len(pairs))
	for i, p := range pairs {
		out[i] = p.Dist <= c.threshold
	}
	return out, nil
}

// Metrics summarizes binary classification quality.
type Metrics struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate compares predictions against ground truth. Degenerate
// denominators (no predicted positives, no true positives) yield zero
// for the affected metric rather than NaN.
func Evaluate(truth, predicted []bool) (Metrics, error) {
	if len(truth) != len(predicted) {
		return Metrics{}, fmt.Errorf("%w: truth=%d predicted=%d", ErrLengthMismatch, len(truth), len(predicted))
	}
	var tp, fp, fn float64
	for i := range truth {
		switch {
		case predicted[i] && truth[i]:
			tp++
		case predicted[i] && !truth[i]:
			fp++
		case !predicted[i] && truth[i]:
			fn++
		}
	}
	var m Metrics
	if tp+fp > 0 {
		m.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		m.Recall = tp / (tp + fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m, nil
}

func distances(pairs []PairDistance) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.Dist
	}
	return out
}
