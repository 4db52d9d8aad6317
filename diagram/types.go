package diagram

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/topogo/backend"
)

var (
	// ErrNoDimensions is returned when an empty homology dimension
	// set reaches the aligner.
	ErrNoDimensions = errors.New("no homology dimensions")
)

// Pair is one (birth, death) persistence pair.
type Pair struct {
	Birth float64
	Death float64
}

// Triple is one aligned output entry: a persistence pair tagged with
// its homology dimension.
type Triple struct {
	Birth     float64
	Death     float64
	Dimension int
}

// Diagonal reports whether the triple is a non-informative padding
// entry.
func (t Triple) Diagonal() bool {
	return t.Birth == t.Death
}

// Diagram is one sample's persistence diagram, bucketed by homology
// dimension. The dimension set is fixed at construction; pairs for
// dimensions outside the set are ignored.
type Diagram struct {
	dims  []int
	pairs [][]Pair
}

// New creates an empty Diagram for a sorted set of distinct,
// non-negative homology dimensions.
func New(dims []int) (*Diagram, error) {
	if err := CheckDimensions(dims); err != nil {
		return nil, err
	}
	return &Diagram{
		dims:  slices.Clone(dims),
		pairs: make([][]Pair, len(dims)),
	}, nil
}

// CheckDimensions validates a homology dimension set: non-empty,
// strictly ascending, non-negative.
func CheckDimensions(dims []int) error {
	if len(dims) == 0 {
		return ErrNoDimensions
	}
	for i, q := range dims {
		if q < 0 {
			return fmt.Errorf("negative homology dimension: %d", q)
		}
		if i > 0 && dims[i-1] >= q {
			return fmt.Errorf("homology dimensions not strictly ascending: %v", dims)
		}
	}
	return nil
}

// Dimensions returns the diagram's homology dimension set.
func (d *Diagram) Dimensions() []int {
	return slices.Clone(d.dims)
}

// Add records a pair in the given dimension. Pairs for dimensions
// outside the diagram's set are dropped, mirroring engines that
// compute every dimension up to the maximum requested one.
func (d *Diagram) Add(dim int, birth, death float64) {
	if k, ok := slices.BinarySearch(d.dims, dim); ok {
		d.pairs[k] = append(d.pairs[k], Pair{Birth: birth, Death: death})
	}
}

// Count returns the number of pairs stored for a dimension.
func (d *Diagram) Count(dim int) int {
	if k, ok := slices.BinarySearch(d.dims, dim); ok {
		return len(d.pairs[k])
	}
	return 0
}

// Pairs returns the pairs stored for a dimension, in insertion order.
func (d *Diagram) Pairs(dim int) []Pair {
	if k, ok := slices.BinarySearch(d.dims, dim); ok {
		return slices.Clone(d.pairs[k])
	}
	return nil
}

// Collection is an ordered sequence of per-sample diagrams,
// index-aligned with the input samples.
type Collection []*Diagram

// FromTriples buckets one engine's raw output into a Diagram.
//
// With dropInfiniteComponent set, the single synthetic dimension-0
// feature that Rips-style engines emit for the final connected
// component (infinite death) is removed before counting; at most one
// such triple is dropped. Witness pipelines never set the flag.
func FromTriples(triples []backend.Triple, dims []int, dropInfiniteComponent bool) (*Diagram, error) {
	d, err := New(dims)
	if err != nil {
		return nil, err
	}
	dropped := false
	for _, t := range triples {
		if dropInfiniteComponent && !dropped && t.Dimension == 0 && t.Unbounded() {
			dropped = true
			continue
		}
		d.Add(t.Dimension, t.Birth, t.Death)
	}
	return d, nil
}
