package biogrid_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/biogrid"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

const sampleTSV = "Gene1\tGene2\tInteraction_Type\tScore\n" +
	"TP53\tMDM2\tphysical\t0.99\n" +
	"TP53\tEP300\tDirect Interaction\t0.8\n" +
	"BRCA1\tBARD1\tgenetic\t0.7\n" +
	"MDM2\tEP300\tPHYSICAL\t0.6\n"

func TestLoadInteractions_FiltersIndirect(t *testing.T) {
	edges, err := biogrid.LoadInteractions(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	want := []core.Edge{
		{U: "TP53", V: "MDM2"},
		{U: "TP53", V: "EP300"},
		{U: "MDM2", V: "EP300"},
	}
	assert.Equal(t, want, edges)
}

func TestLoadInteractions_ColumnOrderFree(t *testing.T) {
	in := "Interaction_Type\tGene2\tGene1\n" +
		"physical\tB\tA\n"
	edges, err := biogrid.LoadInteractions(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: "A", V: "B"}}, edges)
}

func TestLoadInteractions_MissingColumns(t *testing.T) {
	in := "Gene1\tGene2\n" + "A\tB\n"
	_, err := biogrid.LoadInteractions(strings.NewReader(in))
	assert.ErrorIs(t, err, biogrid.ErrMissingColumns)
}

func TestLoadInteractions_FeedsGraphStore(t *testing.T) {
	edges, err := biogrid.LoadInteractions(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	g, err := core.Build(edges)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
}

func TestLoadPathways(t *testing.T) {
	in := "TP53\tp53 signaling\n" +
		"MDM2\tp53 signaling\n" +
		"TP53\tapoptosis\n" +
		"\n"
	p, err := biogrid.LoadPathways(strings.NewReader(in))
	require.NoError(t, err)

	genes := p.GenesIn("p53 signaling")
	sort.Strings(genes)
	assert.Equal(t, []string{"MDM2", "TP53"}, genes)
	assert.Len(t, p["TP53"], 2)
	assert.Empty(t, p.GenesIn("unknown"))
}
