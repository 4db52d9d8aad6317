package testutil

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/topogo/backend"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// FillUniform fills vec with uniform values in [0, 1).
func (r *RNG) FillUniform(vec []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vec {
		vec[i] = r.rand.Float64()
	}
}

// FillGaussian fills vec with standard normal values.
func (r *RNG) FillGaussian(vec []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range vec {
		vec[i] = r.rand.NormFloat64()
	}
}

// Circle generates n points on a radius-r circle with additive
// Gaussian noise of the given scale.
func (r *RNG) Circle(n int, radius, noise float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]float64, n)
	for i := range out {
		theta := 2 * math.Pi * r.rand.Float64()
		out[i] = []float64{
			radius*math.Cos(theta) + noise*r.rand.NormFloat64(),
			radius*math.Sin(theta) + noise*r.rand.NormFloat64(),
		}
	}
	return out
}

// Blob generates n points normally distributed around a center.
func (r *RNG) Blob(n int, center []float64, scale float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]float64, n)
	for i := range out {
		p := make([]float64, len(center))
		for j, c := range center {
			p[j] = c + scale*r.rand.NormFloat64()
		}
		out[i] = p
	}
	return out
}

// StaticEngine returns a filtration engine that answers every call
// with the same triples.
func StaticEngine(triples []backend.Triple) backend.Filtration {
	return backend.FiltrationFunc(func(_ context.Context, _ backend.Input) ([]backend.Triple, error) {
		out := make([]backend.Triple, len(triples))
		copy(out, triples)
		return out, nil
	})
}

// FailingEngine returns a filtration engine that always fails with
// err.
func FailingEngine(err error) backend.Filtration {
	return backend.FiltrationFunc(func(_ context.Context, _ backend.Input) ([]backend.Triple, error) {
		return nil, err
	})
}

// CountingEngine wraps an engine and counts Persistence calls.
type CountingEngine struct {
	Inner backend.Filtration
	Calls atomic.Int64
}

// Persistence delegates to the wrapped engine.
func (c *CountingEngine) Persistence(ctx context.Context, in backend.Input) ([]backend.Triple, error) {
	c.Calls.Add(1)
	return c.Inner.Persistence(ctx, in)
}
