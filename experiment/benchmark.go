package experiment

import (
	"time"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
)

// BenchmarkResult reports query latency over a replayed pair sequence.
type BenchmarkResult struct {
	Queries      int           `json:"queries"`
	Total        time.Duration `json:"total_ns"`
	AvgPerQuery  time.Duration `json:"avg_per_query_ns"`
	ExactAnswers int           `json:"exact_answers"`
}

// Benchmark replays a deterministic sequence of numQueries vertex
// pairs against the oracle and reports the mean latency. The pair
// sequence strides through the token list so both the exact and the
// approximate branch are exercised.
func Benchmark(o *oracle.Oracle, numQueries int) (*BenchmarkResult, error) {
	toks := o.Graph().Tokens()
	res := &BenchmarkResult{}
	start := time.Now()
	for i := 0; i < numQueries; i++ {
		s := toks[i%len(toks)]
		t := toks[(i*31+7)%len(toks)]
		if _, err := o.Query(s, t); err != nil {
			return nil, err
		}
		if covered, err := o.Covered(s, t); err == nil && covered {
			res.ExactAnswers++
		}
	}
	res.Total = time.Since(start)
	res.Queries = numQueries
	if numQueries > 0 {
		res.AvgPerQuery = res.Total / time.Duration(numQueries)
	}
	return res, nil
}
