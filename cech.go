package topogo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
)

// EuclideanCech creates a builder for a Cech persistence pipeline
// driven by a GUDHI-style engine. Cech filtrations are defined on
// Euclidean point clouds only; there is no metric option.
func EuclideanCech(engine backend.Filtration) EuclideanCechBuilder {
	return EuclideanCechBuilder{
		engine:  engine,
		dims:    DefaultHomologyDimensions(),
		coeff:   DefaultCoeff,
		maxEdge: math.Inf(1),
	}
}

// EuclideanCechBuilder is an immutable fluent builder for
// EuclideanCechPersistence estimators.
type EuclideanCechBuilder struct {
	engine    backend.Filtration
	dims      []int
	coeff     int
	maxEdge   float64
	infinity  *float64
	workers   int
	logger    *Logger
	collector MetricsCollector
}

// HomologyDimensions sets the homology dimensions to detect.
// Default: 0 and 1.
func (b EuclideanCechBuilder) HomologyDimensions(dims ...int) EuclideanCechBuilder {
	b.dims = dims
	return b
}

// Coeff sets the prime p of the coefficient field F_p. Default: 2.
func (b EuclideanCechBuilder) Coeff(p int) EuclideanCechBuilder {
	b.coeff = p
	return b
}

// MaxEdgeLength caps the filtration parameter. Must be positive.
// Default: +Inf.
func (b EuclideanCechBuilder) MaxEdgeLength(v float64) EuclideanCechBuilder {
	b.maxEdge = v
	return b
}

// InfinityValues sets the finite death value substituted for features
// still alive at the maximum edge length. Must be positive. Default:
// the maximum edge length itself.
func (b EuclideanCechBuilder) InfinityValues(v float64) EuclideanCechBuilder {
	b.infinity = &v
	return b
}

// Workers sets the worker-pool size. 1 forces serial execution; <= 0
// uses every available compute unit. Default: all.
func (b EuclideanCechBuilder) Workers(n int) EuclideanCechBuilder {
	b.workers = n
	return b
}

// WithLogger sets the structured logger. Default: no logging.
func (b EuclideanCechBuilder) WithLogger(l *Logger) EuclideanCechBuilder {
	b.logger = l
	return b
}

// WithMetrics sets the metrics collector. Default: none.
func (b EuclideanCechBuilder) WithMetrics(c MetricsCollector) EuclideanCechBuilder {
	b.collector = c
	return b
}

// Build validates the configuration and returns the estimator.
func (b EuclideanCechBuilder) Build() (*EuclideanCechPersistence, error) {
	logger, collector, err := resolveCommon(b.engine, b.coeff, b.logger, b.collector)
	if err != nil {
		return nil, err
	}
	dims, maxDim, err := normalizeDimensions(b.dims)
	if err != nil {
		return nil, err
	}
	if b.maxEdge <= 0 {
		return nil, fmt.Errorf("%w: max edge length %v must be positive", ErrInvalidConfiguration, b.maxEdge)
	}
	if b.infinity != nil && *b.infinity <= 0 {
		return nil, fmt.Errorf("%w: infinity value %v must be positive", ErrInvalidConfiguration, *b.infinity)
	}
	infinity := b.maxEdge
	if b.infinity != nil {
		infinity = *b.infinity
	}
	return &EuclideanCechPersistence{
		est: estimator{
			engine:       b.engine,
			name:         "euclidean-cech",
			dims:         dims,
			maxDim:       maxDim,
			coeff:        b.coeff,
			workers:      b.workers,
			dropInfinite: true,
			logger:       logger,
			metrics:      collector,
		},
		maxEdge:  b.maxEdge,
		infinity: infinity,
	}, nil
}

// EuclideanCechPersistence computes persistence diagrams from Cech
// filtrations of Euclidean point clouds.
type EuclideanCechPersistence struct {
	est      estimator
	maxEdge  float64
	infinity float64
}

// InfinityValue returns the finite death value substituted for
// unbounded features.
func (p *EuclideanCechPersistence) InfinityValue() float64 { return p.infinity }

// Transform computes one aligned diagram array for a collection of
// point clouds.
func (p *EuclideanCechPersistence) Transform(ctx context.Context, X [][][]float64) (*diagram.Aligned, error) {
	validate := func(i int) error { return validatePointCloud(i, X[i]) }
	prepare := func(_ context.Context, i int) (backend.Input, error) {
		return backend.Input{
			Points:       X[i],
			MaxDimension: p.est.maxDim,
			Coeff:        p.est.coeff,
			Threshold:    p.maxEdge,
		}, nil
	}
	return p.est.transform(ctx, len(X), validate, prepare, p.infinity)
}
