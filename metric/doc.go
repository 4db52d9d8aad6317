// Package metric provides the pairwise-distance collaborator for the
// persistence pipelines.
//
// A metric is either one of the closed set of built-in kinds
// (resolved by name or by Kind) or a user-supplied Func. Resolution
// happens once at configuration time; per-sample code only ever sees
// a concrete Func.
//
// All kernels operate on float64 rows, matching the precision of the
// filtration values the engines report.
package metric
