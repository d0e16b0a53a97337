package experiment_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/biogrid"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/experiment"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
)

// writeFixtures lays down a small connected interaction network and a
// pathway table: a path TP53–MDM2–EP300–BRCA1–BARD1.
func writeFixtures(t *testing.T) (dataPath, pathwayPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "interactions.tsv")
	interactions := "Gene1\tGene2\tInteraction_Type\n" +
		"TP53\tMDM2\tphysical\n" +
		"MDM2\tEP300\tphysical\n" +
		"EP300\tBRCA1\tdirect interaction\n" +
		"BRCA1\tBARD1\tphysical\n" +
		"TP53\tBARD1\tgenetic\n" // filtered out
	require.NoError(t, os.WriteFile(dataPath, []byte(interactions), 0o644))

	pathwayPath = filepath.Join(dir, "pathways.tsv")
	pathways := "TP53\tp53\n" +
		"MDM2\tp53\n" +
		"EP300\tp53\n"
	require.NoError(t, os.WriteFile(pathwayPath, []byte(pathways), 0o644))
	return dataPath, pathwayPath
}

func float64p(v float64) *float64 { return &v }

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&experiment.Config{}).Validate(), experiment.ErrConfigInvalid)

	cfg := &experiment.Config{DataPath: "x", Pathways: []string{"p53"}}
	assert.ErrorIs(t, cfg.Validate(), experiment.ErrConfigInvalid)

	cfg = &experiment.Config{
		DataPath: "x",
		Known: &experiment.KnownRelations{
			Related:    []experiment.Pair{{A: "a", B: "b"}},
			Unrelated:  []experiment.Pair{{A: "c", B: "d"}},
			Test:       []experiment.Pair{{A: "a", B: "c"}},
			TestLabels: []bool{true, false},
		},
	}
	assert.ErrorIs(t, cfg.Validate(), experiment.ErrConfigInvalid)
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	content := "data_path: interactions.tsv\n" +
		"seed: 42\n" +
		"p1: 1.0\n" +
		"pathways_to_analyze: [p53]\n" +
		"pathway_path: pathways.tsv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NotNil(t, cfg.P1)
	assert.Equal(t, 1.0, *cfg.P1)
	assert.Equal(t, []string{"p53"}, cfg.Pathways)
	assert.Nil(t, cfg.P2)
}

func TestRun_EndToEnd(t *testing.T) {
	dataPath, pathwayPath := writeFixtures(t)
	cfg := &experiment.Config{
		DataPath:    dataPath,
		PathwayPath: pathwayPath,
		Seed:        7,
		P1:          float64p(1), // everything sampled: queries are exact
		P2:          float64p(1),
		Pathways:    []string{"p53"},
		Known: &experiment.KnownRelations{
			Related:    []experiment.Pair{{A: "TP53", B: "MDM2"}, {A: "MDM2", B: "EP300"}},
			Unrelated:  []experiment.Pair{{A: "TP53", B: "BARD1"}, {A: "TP53", B: "BRCA1"}},
			Test:       []experiment.Pair{{A: "EP300", B: "BRCA1"}, {A: "TP53", B: "BARD1"}},
			TestLabels: []bool{true, false},
		},
	}

	res, err := experiment.Run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Vertices)
	assert.Equal(t, 4, res.Edges)
	require.Len(t, res.Pathways, 1)
	// p53 genes are TP53,MDM2,EP300 on a path: d=1,1,2 → mean 4/3.
	assert.InDelta(t, 4.0/3.0, res.Pathways[0].AvgASPL, 1e-12)
	assert.Equal(t, 3, res.Pathways[0].GeneCount)

	// Related mean 1, unrelated mean (4+3)/2=3.5 → θ=2.25.
	require.NotNil(t, res.Threshold)
	assert.InDelta(t, 2.25, *res.Threshold, 1e-12)

	// Test pairs: d(EP300,BRCA1)=1 ≤ θ related ✓, d(TP53,BARD1)=4 > θ
	// unrelated ✓ → perfect metrics.
	require.NotNil(t, res.Performance)
	assert.Equal(t, 1.0, res.Performance.Precision)
	assert.Equal(t, 1.0, res.Performance.Recall)
	assert.Equal(t, 1.0, res.Performance.F1)
}

func TestRun_ResultJSONRoundTrip(t *testing.T) {
	dataPath, pathwayPath := writeFixtures(t)
	cfg := &experiment.Config{
		DataPath:    dataPath,
		PathwayPath: pathwayPath,
		Seed:        7,
		P1:          float64p(1),
		P2:          float64p(0),
		Pathways:    []string{"p53"},
	}
	res, err := experiment.Run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteJSON(&buf))
	var decoded experiment.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.Vertices, decoded.Vertices)
	assert.Equal(t, res.Pathways[0].AvgASPL, decoded.Pathways[0].AvgASPL)
}

func TestBenchmark_Latency(t *testing.T) {
	dataPath, _ := writeFixtures(t)
	edges, err := biogrid.LoadInteractionsFile(dataPath)
	require.NoError(t, err)
	g, err := core.Build(edges)
	require.NoError(t, err)
	o, err := oracle.Build(g, oracle.WithP1(1), oracle.WithP2(1))
	require.NoError(t, err)

	res, err := experiment.Benchmark(o, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Queries)
	assert.Equal(t, res.Total/100, res.AvgPerQuery)
	assert.GreaterOrEqual(t, res.Total, res.AvgPerQuery)
}
