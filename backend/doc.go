// Package backend defines the boundary to external filtration engines.
//
// Topogo never builds simplicial complexes or computes persistence
// itself. A Filtration implementation (typically a binding to a
// Ripser-style or GUDHI-style engine) receives one sample's input and
// returns the raw, unordered persistence triples for that sample.
// Everything downstream (artifact trimming, infinity substitution,
// alignment into a rectangular array) is handled by topogo.
//
// # Sentinel for unbounded features
//
// Engines report features that never die with a death value of
// math.Inf(1). Topogo rewrites that sentinel to the configured finite
// infinity value during alignment; engines must not do their own
// substitution.
package backend
