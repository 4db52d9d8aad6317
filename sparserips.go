package topogo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/metric"
)

// SparseRips creates a builder for a sparse Vietoris-Rips persistence
// pipeline driven by a GUDHI-style engine. Sparse Rips approximates
// the exact filtration; Epsilon controls the approximation quality.
func SparseRips(engine backend.Filtration) SparseRipsBuilder {
	return SparseRipsBuilder{
		engine:     engine,
		metricKind: metric.Euclidean,
		dims:       DefaultHomologyDimensions(),
		coeff:      DefaultCoeff,
		epsilon:    DefaultEpsilon,
		maxEdge:    math.Inf(1),
	}
}

// SparseRipsBuilder is an immutable fluent builder for
// SparseRipsPersistence estimators.
type SparseRipsBuilder struct {
	engine     backend.Filtration
	metricKind metric.Kind
	metricFn   metric.Func
	dims       []int
	coeff      int
	epsilon    float64
	maxEdge    float64
	infinity   *float64
	workers    int
	logger     *Logger
	collector  MetricsCollector
}

// Metric sets a built-in metric. metric.Precomputed makes Transform
// interpret each sample as a ready-made square distance matrix.
// Default: metric.Euclidean.
func (b SparseRipsBuilder) Metric(k metric.Kind) SparseRipsBuilder {
	b.metricKind = k
	return b
}

// MetricFunc sets a custom pointwise metric, overriding Metric.
func (b SparseRipsBuilder) MetricFunc(fn metric.Func) SparseRipsBuilder {
	b.metricFn = fn
	return b
}

// HomologyDimensions sets the homology dimensions to detect.
// Default: 0 and 1.
func (b SparseRipsBuilder) HomologyDimensions(dims ...int) SparseRipsBuilder {
	b.dims = dims
	return b
}

// Coeff sets the prime p of the coefficient field F_p. Default: 2.
func (b SparseRipsBuilder) Coeff(p int) SparseRipsBuilder {
	b.coeff = p
	return b
}

// Epsilon sets the approximation parameter in [0, 1]. 0 matches the
// exact Vietoris-Rips filtration but is slower. Default: 0.1.
func (b SparseRipsBuilder) Epsilon(eps float64) SparseRipsBuilder {
	b.epsilon = eps
	return b
}

// MaxEdgeLength caps the filtration parameter. Default: +Inf.
func (b SparseRipsBuilder) MaxEdgeLength(v float64) SparseRipsBuilder {
	b.maxEdge = v
	return b
}

// InfinityValues sets the finite death value substituted for features
// still alive at the maximum edge length. Default: the maximum edge
// length itself.
func (b SparseRipsBuilder) InfinityValues(v float64) SparseRipsBuilder {
	b.infinity = &v
	return b
}

// Workers sets the worker-pool size. 1 forces serial execution; <= 0
// uses every available compute unit. Default: all.
func (b SparseRipsBuilder) Workers(n int) SparseRipsBuilder {
	b.workers = n
	return b
}

// WithLogger sets the structured logger. Default: no logging.
func (b SparseRipsBuilder) WithLogger(l *Logger) SparseRipsBuilder {
	b.logger = l
	return b
}

// WithMetrics sets the metrics collector. Default: none.
func (b SparseRipsBuilder) WithMetrics(c MetricsCollector) SparseRipsBuilder {
	b.collector = c
	return b
}

// Build validates the configuration and returns the estimator.
func (b SparseRipsBuilder) Build() (*SparseRipsPersistence, error) {
	logger, collector, err := resolveCommon(b.engine, b.coeff, b.logger, b.collector)
	if err != nil {
		return nil, err
	}
	dims, maxDim, err := normalizeDimensions(b.dims)
	if err != nil {
		return nil, err
	}
	fn, precomputed, err := resolveMetric(b.metricKind, b.metricFn)
	if err != nil {
		return nil, err
	}
	if b.epsilon < 0 || b.epsilon > 1 {
		return nil, fmt.Errorf("%w: epsilon %v outside [0, 1]", ErrInvalidConfiguration, b.epsilon)
	}
	infinity := b.maxEdge
	if b.infinity != nil {
		infinity = *b.infinity
	}
	return &SparseRipsPersistence{
		est: estimator{
			engine:       b.engine,
			name:         "sparse-rips",
			dims:         dims,
			maxDim:       maxDim,
			coeff:        b.coeff,
			workers:      b.workers,
			dropInfinite: true,
			logger:       logger,
			metrics:      collector,
		},
		metricFn:    fn,
		precomputed: precomputed,
		epsilon:     b.epsilon,
		maxEdge:     b.maxEdge,
		infinity:    infinity,
	}, nil
}

// SparseRipsPersistence computes persistence diagrams from sparse
// Vietoris-Rips filtrations. The engine always receives a distance
// matrix: the pipeline computes it from point clouds unless the
// metric is precomputed.
type SparseRipsPersistence struct {
	est         estimator
	metricFn    metric.Func
	precomputed bool
	epsilon     float64
	maxEdge     float64
	infinity    float64
}

// InfinityValue returns the finite death value substituted for
// unbounded features.
func (p *SparseRipsPersistence) InfinityValue() float64 { return p.infinity }

// Transform computes one aligned diagram array for a collection of
// samples.
func (p *SparseRipsPersistence) Transform(ctx context.Context, X [][][]float64) (*diagram.Aligned, error) {
	validate := func(i int) error {
		if p.precomputed {
			return validateSquare(i, X[i])
		}
		return validatePointCloud(i, X[i])
	}
	prepare := func(_ context.Context, i int) (backend.Input, error) {
		dm := X[i]
		if !p.precomputed {
			var err error
			dm, err = metric.Pairwise(X[i], p.metricFn)
			if err != nil {
				return backend.Input{}, fmt.Errorf("distance matrix: %w", err)
			}
		}
		return backend.Input{
			DistanceMatrix: dm,
			MaxDimension:   p.est.maxDim,
			Coeff:          p.est.coeff,
			Threshold:      p.maxEdge,
			Epsilon:        p.epsilon,
		}, nil
	}
	return p.est.transform(ctx, len(X), validate, prepare, p.infinity)
}
