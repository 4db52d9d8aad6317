package backend

import (
	"context"
	"math"

	"github.com/hupe1980/topogo/landmark"
)

// Triple is one raw persistence pair as reported by an engine, tagged
// with its homology dimension. Order within an engine's output carries
// no meaning.
type Triple struct {
	Dimension int
	Birth     float64
	Death     float64
}

// Unbounded reports whether the triple carries the "never dies"
// sentinel (positive infinity death).
func (t Triple) Unbounded() bool {
	return math.IsInf(t.Death, 1)
}

// Input is one sample's worth of work for a filtration engine.
// Exactly one of Points, DistanceMatrix or NearestLandmarks is set,
// depending on the pipeline variant driving the engine.
type Input struct {
	// Points holds one point per row for engines that consume raw
	// point clouds (Rips on point clouds, Cech).
	Points [][]float64

	// DistanceMatrix holds a precomputed square distance matrix for
	// engines that consume metric spaces directly.
	DistanceMatrix [][]float64

	// NearestLandmarks drives Witness-complex engines. Row w lists
	// every landmark sorted by ascending distance from witness w.
	NearestLandmarks landmark.Table

	// MaxDimension is the largest homology dimension to compute.
	MaxDimension int

	// Coeff selects the prime coefficient field F_p.
	Coeff int

	// Threshold is the maximum edge length (filtration value) to
	// consider. math.Inf(1) means unbounded.
	Threshold float64

	// Epsilon is the sparse-Rips approximation parameter. Zero for
	// exact variants.
	Epsilon float64

	// Relaxation is the Witness-complex relaxation radius. Only
	// meaningful together with NearestLandmarks.
	Relaxation float64

	// Strong selects strong Witness semantics over weak ones.
	Strong bool
}

// Filtration computes the persistence of one sample. Implementations
// must be safe for concurrent use: the dispatcher calls Persistence
// from multiple goroutines, one sample each.
type Filtration interface {
	Persistence(ctx context.Context, in Input) ([]Triple, error)
}

// FiltrationFunc adapts a plain function to the Filtration interface.
type FiltrationFunc func(ctx context.Context, in Input) ([]Triple, error)

// Persistence calls f.
func (f FiltrationFunc) Persistence(ctx context.Context, in Input) ([]Triple, error) {
	return f(ctx, in)
}
