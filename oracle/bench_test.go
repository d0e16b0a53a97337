package oracle_test

import (
	"testing"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/gen"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
)

func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	edges, err := gen.Build([]gen.Option{gen.WithSeed(1)}, gen.RandomSparse(n, 4.0/float64(n)))
	if err != nil {
		b.Fatal(err)
	}
	g, err := core.Build(edges)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkBuild measures the full oracle pipeline on a sparse random
// graph with the formula-driven probabilities.
func BenchmarkBuild(b *testing.B) {
	g := benchGraph(b, 2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := oracle.Build(g, oracle.WithSeed(7)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQuery measures query latency on a prebuilt oracle, cycling
// through a fixed pair sequence so both branches are exercised.
func BenchmarkQuery(b *testing.B) {
	g := benchGraph(b, 2000)
	o, err := oracle.Build(g, oracle.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	toks := g.Tokens()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := toks[i%len(toks)]
		t := toks[(i*31+7)%len(toks)]
		if _, err := o.Query(s, t); err != nil {
			b.Fatal(err)
		}
	}
}
