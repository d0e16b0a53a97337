package experiment

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/biogrid"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/relate"
)

// PathwayResult is the ASPL aggregation of one pathway.
type PathwayResult struct {
	Pathway   string                `json:"pathway"`
	AvgASPL   float64               `json:"avg_aspl"`
	GeneCount int                   `json:"gene_count"`
	Pairs     []relate.PairDistance `json:"pairs,omitempty"`
}

// Result is the JSON-serializable outcome of a run.
type Result struct {
	Vertices    int             `json:"vertices"`
	Edges       int             `json:"edges"`
	Landmarks   int             `json:"landmarks"`
	Centers     int             `json:"centers"`
	ExactPairs  int             `json:"exact_pairs"`
	Pathways    []PathwayResult `json:"pathway_results,omitempty"`
	Threshold   *float64        `json:"threshold,omitempty"`
	Performance *relate.Metrics `json:"classification_performance,omitempty"`
}

// Run executes the configured pipeline: load interactions, build the
// oracle, aggregate pathway ASPLs, and (when known relations are
// configured) fit and evaluate the classifier.
func Run(ctx context.Context, cfg *Config, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	edges, err := biogrid.LoadInteractionsFile(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(edges)
	if err != nil {
		return nil, err
	}
	log.Info().Int("vertices", g.NumVertices()).Int("edges", g.NumEdges()).
		Msg("loaded interaction network")

	opts := []oracle.Option{
		oracle.WithContext(ctx),
		oracle.WithSeed(cfg.Seed),
		oracle.WithParallelism(cfg.Parallelism),
	}
	if cfg.P1 != nil {
		opts = append(opts, oracle.WithP1(*cfg.P1))
	}
	if cfg.P2 != nil {
		opts = append(opts, oracle.WithP2(*cfg.P2))
	}
	o, err := oracle.Build(g, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Vertices:   g.NumVertices(),
		Edges:      g.NumEdges(),
		Landmarks:  len(o.Landmarks()),
		Centers:    len(o.Centers()),
		ExactPairs: o.ExactPairCount(),
	}
	log.Info().Int("landmarks", res.Landmarks).Int("centers", res.Centers).
		Int("exact_pairs", res.ExactPairs).Msg("oracle built")

	if len(cfg.Pathways) > 0 {
		pathways, err := biogrid.LoadPathwaysFile(cfg.PathwayPath)
		if err != nil {
			return nil, err
		}
		for _, name := range cfg.Pathways {
			genes := pathways.GenesIn(name)
			mean, pairs, err := relate.PathwayASPL(o, genes)
			if err != nil {
				return nil, fmt.Errorf("pathway %q: %w", name, err)
			}
			res.Pathways = append(res.Pathways, PathwayResult{
				Pathway:   name,
				AvgASPL:   mean,
				GeneCount: len(genes),
				Pairs:     pairs,
			})
			log.Info().Str("pathway", name).Float64("avg_aspl", mean).
				Int("genes", len(genes)).Msg("pathway aggregated")
		}
	}

	if cfg.Known != nil {
		if err := classify(o, cfg.Known, res, log); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// classify runs the optional classifier stage against known relations.
func classify(o *oracle.Oracle, known *KnownRelations, res *Result, log zerolog.Logger) error {
	measure := func(pairs []Pair) ([]relate.PairDistance, error) {
		out := make([]relate.PairDistance, 0, len(pairs))
		for _, p := range pairs {
			d, err := o.Query(p.A, p.B)
			if err != nil {
				return nil, err
			}
			out = append(out, relate.PairDistance{U: p.A, V: p.B, Dist: float64(d)})
		}
		return out, nil
	}

	related, err := measure(known.Related)
	if err != nil {
		return err
	}
	unrelated, err := measure(known.Unrelated)
	if err != nil {
		return err
	}
	var clf relate.Classifier
	if err := clf.Fit(related, unrelated); err != nil {
		return err
	}
	theta, _ := clf.Threshold()
	res.Threshold = &theta
	log.Info().Float64("threshold", theta).Msg("classifier fitted")

	if len(known.Test) == 0 {
		return nil
	}
	test, err := measure(known.Test)
	if err != nil {
		return err
	}
	pred, err := clf.Predict(test)
	if err != nil {
		return err
	}
	metrics, err := relate.Evaluate(known.TestLabels, pred)
	if err != nil {
		return err
	}
	res.Performance = &metrics
	log.Info().Float64("precision", metrics.Precision).Float64("recall", metrics.Recall).
		Float64("f1", metrics.F1).Msg("classifier evaluated")
	return nil
}

// WriteJSON serializes the result with indentation for human reading.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
