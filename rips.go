package topogo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/metric"
)

// VietorisRips creates a builder for a Vietoris-Rips persistence
// pipeline driven by a Ripser-style engine.
//
// The builder is immutable - each method returns a new builder with
// the updated configuration.
//
// Example:
//
//	est, err := topogo.VietorisRips(engine).
//	    HomologyDimensions(0, 1, 2).
//	    MaxEdgeLength(4).
//	    Workers(8).
//	    Build()
func VietorisRips(engine backend.Filtration) VietorisRipsBuilder {
	return VietorisRipsBuilder{
		engine:     engine,
		metricKind: metric.Euclidean,
		dims:       DefaultHomologyDimensions(),
		coeff:      DefaultCoeff,
		maxEdge:    math.Inf(1),
	}
}

// VietorisRipsBuilder is an immutable fluent builder for
// VietorisRipsPersistence estimators.
type VietorisRipsBuilder struct {
	engine     backend.Filtration
	metricKind metric.Kind
	metricFn   metric.Func
	dims       []int
	coeff      int
	maxEdge    float64
	infinity   *float64
	workers    int
	logger     *Logger
	collector  MetricsCollector
}

// Metric sets a built-in metric. metric.Precomputed makes Transform
// interpret each sample as a ready-made square distance matrix.
// Default: metric.Euclidean.
func (b VietorisRipsBuilder) Metric(k metric.Kind) VietorisRipsBuilder {
	b.metricKind = k
	return b
}

// MetricFunc sets a custom pointwise metric, overriding Metric.
func (b VietorisRipsBuilder) MetricFunc(fn metric.Func) VietorisRipsBuilder {
	b.metricFn = fn
	return b
}

// HomologyDimensions sets the homology dimensions to detect.
// Default: 0 and 1.
func (b VietorisRipsBuilder) HomologyDimensions(dims ...int) VietorisRipsBuilder {
	b.dims = dims
	return b
}

// Coeff sets the prime p of the coefficient field F_p. Default: 2.
func (b VietorisRipsBuilder) Coeff(p int) VietorisRipsBuilder {
	b.coeff = p
	return b
}

// MaxEdgeLength caps the filtration parameter. Features at larger
// scales are not detected. Default: +Inf.
func (b VietorisRipsBuilder) MaxEdgeLength(v float64) VietorisRipsBuilder {
	b.maxEdge = v
	return b
}

// InfinityValues sets the finite death value substituted for features
// still alive at the maximum edge length. Default: the maximum edge
// length itself.
func (b VietorisRipsBuilder) InfinityValues(v float64) VietorisRipsBuilder {
	b.infinity = &v
	return b
}

// Workers sets the worker-pool size. 1 forces serial execution; <= 0
// uses every available compute unit. Default: all.
func (b VietorisRipsBuilder) Workers(n int) VietorisRipsBuilder {
	b.workers = n
	return b
}

// WithLogger sets the structured logger. Default: no logging.
func (b VietorisRipsBuilder) WithLogger(l *Logger) VietorisRipsBuilder {
	b.logger = l
	return b
}

// WithMetrics sets the metrics collector. Default: none.
func (b VietorisRipsBuilder) WithMetrics(c MetricsCollector) VietorisRipsBuilder {
	b.collector = c
	return b
}

// Build validates the configuration and returns the estimator.
func (b VietorisRipsBuilder) Build() (*VietorisRipsPersistence, error) {
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
	infinity := b.maxEdge
	if b.infinity != nil {
		infinity = *b.infinity
	}
	return &VietorisRipsPersistence{
		est: estimator{
			engine:       b.engine,
			name:         "vietoris-rips",
			dims:         dims,
			maxDim:       maxDim,
			coeff:        b.coeff,
			workers:      b.workers,
			dropInfinite: true,
			logger:       logger,
			metrics:      collector,
		},
		metricFn: fn,
		// Ripser-style engines compute Euclidean distances natively;
		// every other metric goes through a pairwise matrix.
		passPoints:  !precomputed && b.metricFn == nil && b.metricKind == metric.Euclidean,
		precomputed: precomputed,
		maxEdge:     b.maxEdge,
		infinity:    infinity,
	}, nil
}

// VietorisRipsPersistence computes persistence diagrams from
// Vietoris-Rips filtrations of point clouds or distance matrices.
type VietorisRipsPersistence struct {
	est         estimator
	metricFn    metric.Func
	passPoints  bool
	precomputed bool
	maxEdge     float64
	infinity    float64
}

// InfinityValue returns the finite death value substituted for
// unbounded features.
func (p *VietorisRipsPersistence) InfinityValue() float64 { return p.infinity }

// Transform computes one aligned diagram array for a collection of
// samples. With a precomputed metric each sample is a square distance
// matrix; otherwise each sample is a point cloud, one point per row.
func (p *VietorisRipsPersistence) Transform(ctx context.Context, X [][][]float64) (*diagram.Aligned, error) {
	validate := func(i int) error {
		if p.precomputed {
			return validateSquare(i, X[i])
		}
		return validatePointCloud(i, X[i])
	}
	prepare := func(_ context.Context, i int) (backend.Input, error) {
		in := backend.Input{
			MaxDimension: p.est.maxDim,
			Coeff:        p.est.coeff,
			Threshold:    p.maxEdge,
		}
		switch {
		case p.precomputed:
			in.DistanceMatrix = X[i]
		case p.passPoints:
			in.Points = X[i]
		default:
			dm, err := metric.Pairwise(X[i], p.metricFn)
			if err != nil {
				return backend.Input{}, fmt.Errorf("distance matrix: %w", err)
			}
			in.DistanceMatrix = dm
		}
		return in, nil
	}
	return p.est.transform(ctx, len(X), validate, prepare, p.infinity)
}
