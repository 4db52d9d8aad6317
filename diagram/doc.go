// Package diagram holds the persistence-diagram data model and the
// aligner that turns a collection of variable-length per-sample
// diagrams into one rectangular array.
//
// A Diagram stores one sample's (birth, death) pairs in a fixed slot
// per requested homology dimension, decided once per batch. Align
// lays the dimensions out in ascending contiguous blocks, substitutes
// the engine's infinite-death sentinel with a finite value, and pads
// short blocks with diagonal triples (birth == death) that carry no
// topological meaning.
package diagram
