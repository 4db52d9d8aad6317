package diagram

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// paddingValue fills the birth and death coordinates of every padding
// triple. The exact number is meaningless; birth == death is the only
// contract.
const paddingValue = 0

// Aligned is a rectangular (samples, features, 3) array of persistence
// triples, uniform across every sample of one Align call. Dimension q
// occupies a contiguous block of Width(q) feature slots, blocks laid
// out in ascending dimension order.
type Aligned struct {
	samples  int
	features int
	dims     []int
	widths   []int
	offsets  []int
	infinity float64
	data     []float64
}

// Align builds the rectangular array for a collection of per-sample
// diagrams.
//
// For every dimension q the block width is the maximum pair count over
// all samples, floored at one so q stays addressable even when empty
// everywhere. Infinite deaths are rewritten to infinity before
// placement; remaining slots are padded with diagonal triples.
func Align(c Collection, dims []int, infinity float64) (*Aligned, error) {
	if err := CheckDimensions(dims); err != nil {
		return nil, err
	}
	for s, d := range c {
		if d == nil {
			return nil, fmt.Errorf("sample %d: nil diagram", s)
		}
		if !slices.Equal(d.dims, dims) {
			return nil, fmt.Errorf("sample %d: diagram dimensions %v do not match %v", s, d.dims, dims)
		}
	}

	widths := make([]int, len(dims))
	for k := range dims {
		widths[k] = 1
		for _, d := range c {
			if n := len(d.pairs[k]); n > widths[k] {
				widths[k] = n
			}
		}
	}
	offsets := make([]int, len(dims))
	features := 0
	for k, w := range widths {
		offsets[k] = features
		features += w
	}

	a := &Aligned{
		samples:  len(c),
		features: features,
		dims:     slices.Clone(dims),
		widths:   widths,
		offsets:  offsets,
		infinity: infinity,
		data:     make([]float64, len(c)*features*3),
	}
	for s, d := range c {
		for k, q := range dims {
			base := (s*features + offsets[k]) * 3
			for i, p := range d.pairs[k] {
				death := p.Death
				if math.IsInf(death, 1) {
					death = infinity
				}
				a.data[base+3*i] = p.Birth
				a.data[base+3*i+1] = death
				a.data[base+3*i+2] = float64(q)
			}
			for i := len(d.pairs[k]); i < widths[k]; i++ {
				a.data[base+3*i] = paddingValue
				a.data[base+3*i+1] = paddingValue
				a.data[base+3*i+2] = float64(q)
			}
		}
	}
	return a, nil
}

// FromRaw reconstructs an Aligned from its serialized parts. The data
// slice is adopted, not copied, and must hold samples*Σwidths*3
// values.
func FromRaw(dims, widths []int, samples int, infinity float64, data []float64) (*Aligned, error) {
	if err := CheckDimensions(dims); err != nil {
		return nil, err
	}
	if len(widths) != len(dims) {
		return nil, fmt.Errorf("width count %d does not match dimension count %d", len(widths), len(dims))
	}
	if samples < 0 {
		return nil, errors.New("negative sample count")
	}
	offsets := make([]int, len(dims))
	features := 0
	for k, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("dimension %d: block width %d < 1", dims[k], w)
		}
		offsets[k] = features
		features += w
	}
	if len(data) != samples*features*3 {
		return nil, fmt.Errorf("data length %d does not match shape (%d, %d, 3)", len(data), samples, features)
	}
	return &Aligned{
		samples:  samples,
		features: features,
		dims:     slices.Clone(dims),
		widths:   slices.Clone(widths),
		offsets:  offsets,
		infinity: infinity,
		data:     data,
	}, nil
}

// NumSamples returns the first axis length.
func (a *Aligned) NumSamples() int { return a.samples }

// NumFeatures returns the second axis length.
func (a *Aligned) NumFeatures() int { return a.features }

// Dimensions returns the homology dimension set, ascending.
func (a *Aligned) Dimensions() []int { return slices.Clone(a.dims) }

// Infinity returns the finite death value substituted for unbounded
// features in this array.
func (a *Aligned) Infinity() float64 { return a.infinity }

// Width returns the feature-block width of a dimension, or 0 for a
// dimension outside the set.
func (a *Aligned) Width(dim int) int {
	if k, ok := slices.BinarySearch(a.dims, dim); ok {
		return a.widths[k]
	}
	return 0
}

// At returns the triple at a (sample, feature) position.
func (a *Aligned) At(sample, feature int) Triple {
	base := (sample*a.features + feature) * 3
	return Triple{
		Birth:     a.data[base],
		Death:     a.data[base+1],
		Dimension: int(a.data[base+2]),
	}
}

// Block returns one sample's triples for one dimension.
func (a *Aligned) Block(sample, dim int) []Triple {
	k, ok := slices.BinarySearch(a.dims, dim)
	if !ok {
		return nil
	}
	out := make([]Triple, a.widths[k])
	for i := range out {
		out[i] = a.At(sample, a.offsets[k]+i)
	}
	return out
}

// Sample returns all of one sample's triples in feature order.
func (a *Aligned) Sample(sample int) []Triple {
	out := make([]Triple, a.features)
	for f := range out {
		out[f] = a.At(sample, f)
	}
	return out
}

// Raw exposes the flat float64 backing array in (sample, feature,
// coordinate) order. Callers must not resize it.
func (a *Aligned) Raw() []float64 { return a.data }

// Widths returns the per-dimension block widths, index-aligned with
// Dimensions.
func (a *Aligned) Widths() []int { return slices.Clone(a.widths) }
