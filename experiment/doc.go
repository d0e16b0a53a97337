// Package experiment wires the full pipeline behind a YAML
// configuration: load BioGRID interactions, build the distance oracle,
// compute pathway ASPLs, and optionally fit and evaluate the
// relatedness classifier against known gene relations.
//
// A Config is read from YAML and validated before anything runs; the
// Result of a run serializes to JSON for downstream plotting. Progress
// is logged through an injected zerolog.Logger, so library consumers
// can silence it with zerolog.Nop().
//
// The query benchmark replays a deterministic pair sequence against a
// built oracle and reports the mean latency.
//
// Errors
//
//   - ErrConfigInvalid  a required field is missing or inconsistent.
//   - wrapped loader/oracle/relate errors from the pipeline stages.
package experiment
