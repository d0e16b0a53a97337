// Package biogrid loads BioGRID-style interaction data into the edge
// stream consumed by the graph store.
//
// The input is tab-separated with a header row naming at least the
// Gene1, Gene2 and Interaction_Type columns (in any order). Rows whose
// interaction type is not a direct physical interaction are filtered
// out; the survivors become undirected edges between gene tokens.
// Self-interactions and duplicates pass through untouched — the graph
// store deduplicates.
//
// A second, two-column gene→pathway table can be loaded into a
// Pathways map for the ASPL analysis downstream.
//
// Errors
//
//   - ErrMissingColumns  a required header column is absent.
//   - wrapped csv/io errors for malformed input.
package biogrid
