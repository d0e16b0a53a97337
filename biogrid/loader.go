package biogrid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// ErrMissingColumns indicates the header row lacks a required column.
var ErrMissingColumns = errors.New("biogrid: missing required columns")

// Required header columns of an interaction table.
const (
	colGene1 = "Gene1"
	colGene2 = "Gene2"
	colType  = "Interaction_Type"
)

// directTypes are the interaction types kept by the filter,
// lowercased for case-insensitive matching.
var directTypes = map[string]struct{}{
	"physical":           {},
	"direct interaction": {},
}

// LoadInteractions reads a tab-separated BioGRID interaction table,
// keeps only direct physical interactions, and returns the resulting
// undirected edge stream. Column order is free; extra columns are
// ignored.
func LoadInteractions(r io.Reader) ([]core.Edge, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("biogrid: reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colGene1, colGene2, colType} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, required)
		}
	}
	g1, g2, ty := idx[colGene1], idx[colGene2], idx[colType]

	var edges []core.Edge
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("biogrid: line %d: %w", line, err)
		}
		if len(rec) <= g1 || len(rec) <= g2 || len(rec) <= ty {
			continue // short row, nothing usable
		}
		if _, ok := directTypes[strings.ToLower(strings.TrimSpace(rec[ty]))]; !ok {
			continue
		}
		edges = append(edges, core.Edge{
			U: strings.TrimSpace(rec[g1]),
			V: strings.TrimSpace(rec[g2]),
		})
	}
	return edges, nil
}

// LoadInteractionsFile opens path and delegates to LoadInteractions.
func LoadInteractionsFile(path string) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("biogrid: %w", err)
	}
	defer f.Close()
	return LoadInteractions(f)
}

// Pathways maps a gene token to the set of pathways it belongs to.
type Pathways map[string]map[string]struct{}

// GenesIn returns the genes annotated with the given pathway, in
// unspecified order.
func (p Pathways) GenesIn(pathway string) []string {
	var genes []string
	for gene, set := range p {
		if _, ok := set[pathway]; ok {
			genes = append(genes, gene)
		}
	}
	return genes
}

// LoadPathways reads a two-column tab-separated gene→pathway table
// (no header) into a Pathways map. Blank lines are skipped.
func LoadPathways(r io.Reader) (Pathways, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	out := make(Pathways)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("biogrid: pathways line %d: %w", line, err)
		}
		if len(rec) < 2 {
			continue
		}
		gene := strings.TrimSpace(rec[0])
		pathway := strings.TrimSpace(rec[1])
		if gene == "" || pathway == "" {
			continue
		}
		if out[gene] == nil {
			out[gene] = make(map[string]struct{})
		}
		out[gene][pathway] = struct{}{}
	}
	return out, nil
}

// LoadPathwaysFile opens path and delegates to LoadPathways.
func LoadPathwaysFile(path string) (Pathways, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("biogrid: %w", err)
	}
	defer f.Close()
	return LoadPathways(f)
}
