// Package biorelate answers shortest-path distance queries on large,
// sparse, unweighted protein-interaction networks using a two-level
// landmark-and-ball approximate distance oracle.
//
// 🧬 What is biorelate?
//
//	A library plus experiment pipeline that brings together:
//
//	  • An immutable dense graph store with token interning
//	  • A BFS engine with depth pruning and cancellation
//	  • Two-level Thorup–Zwick-style sampling: landmarks (p₁ = n^(-1/3))
//	    and neighborhood centers (p₂ = n^(-2/3)) with their balls
//	  • An exact-distance table over intersecting ball pairs, and a
//	    query engine that falls back to landmark routing with bounded
//	    stretch
//
// Under the hood, everything is organized as flat subpackages:
//
//	core/         — immutable graph store, token↔index interning
//	bfs/          — single-source unweighted distances
//	landmark/     — level-one sampling + dense |L|×n distance table
//	neighborhood/ — level-two center sampling + pruned ball BFS
//	oracle/       — exact table, query engine, build façade
//	gen/          — deterministic fixture graph generators
//	biogrid/      — BioGRID TSV interaction loader
//	relate/       — pathway ASPL aggregation + relatedness classifier
//	experiment/   — YAML-configured end-to-end pipeline runner
//
// Quick ASCII picture of a query (s,t) on the approximate branch:
//
//	    s ─┐            ┌─ t
//	       ℓs ════════ ℓt
//
//	answer = d(ℓs,s) + d(ℓs,ℓt) + d(ℓt,t), never below the true distance.
//
// The oracle is built once per graph and seed, then serves any number of
// concurrent read-only queries.
//
//	go get github.com/SandeepChatterjee66/Efficient-Biological-Relatedness
package biorelate
