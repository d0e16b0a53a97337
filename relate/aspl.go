package relate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
)

// ErrTooFewGenes indicates an ASPL request over fewer than two genes.
var ErrTooFewGenes = errors.New("relate: need at least two genes for ASPL")

// PairDistance is one queried gene pair with its oracle distance.
type PairDistance struct {
	U, V string
	Dist float64
}

// PathwayASPL computes the arithmetic mean of the oracle distance over
// all unordered pairs {u,v} ⊆ genes, u≠v, in the given gene order, and
// returns the per-pair records alongside the mean. Duplicate tokens in
// genes are used as given; callers feeding pathway sets should pass
// each gene once. Fails with ErrTooFewGenes when |genes| < 2 and
// propagates oracle errors (e.g. an unknown gene token).
func PathwayASPL(o *oracle.Oracle, genes []string) (float64, []PairDistance, error) {
	if len(genes) < 2 {
		return 0, nil, fmt.Errorf("%w: got %d", ErrTooFewGenes, len(genes))
	}
	pairs := make([]PairDistance, 0, len(genes)*(len(genes)-1)/2)
	dists := make([]float64, 0, cap(pairs))
	for i := 0; i < len(genes); i++ {
		for j := i + 1; j < len(genes); j++ {
			d, err := o.Query(genes[i], genes[j])
			if err != nil {
				return 0, nil, err
			}
			pd := PairDistance{U: genes[i], V: genes[j], Dist: float64(d)}
			pairs = append(pairs, pd)
			dists = append(dists, pd.Dist)
		}
	}
	return stat.Mean(dists, nil), pairs, nil
}
