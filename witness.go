package topogo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/landmark"
	"github.com/hupe1980/topogo/metric"
)

// Witness creates a builder for a Witness persistence pipeline driven
// by a GUDHI-style engine. Each point cloud is subsampled into
// landmarks, and the engine receives the nearest-landmark table
// instead of raw points.
func Witness(engine backend.Filtration) WitnessBuilder {
	return WitnessBuilder{
		engine:     engine,
		metricKind: metric.Euclidean,
		dims:       DefaultHomologyDimensions(),
		coeff:      DefaultCoeff,
		nLandmarks: DefaultNLandmarks,
		rule:       landmark.Random,
		seed:       time.Now().UnixNano(),
	}
}

// WitnessBuilder is an immutable fluent builder for WitnessPersistence
// estimators.
type WitnessBuilder struct {
	engine     backend.Filtration
	metricKind metric.Kind
	metricFn   metric.Func
	dims       []int
	coeff      int
	nLandmarks int
	strong     bool
	relaxation float64
	rule       landmark.Rule
	selector   landmark.Selector
	seed       int64
	infinity   *float64
	workers    int
	logger     *Logger
	collector  MetricsCollector
}

// Metric sets a built-in metric for witness-landmark distances.
// Precomputed input is not supported: witness pipelines need raw
// point clouds. Default: metric.Euclidean.
func (b WitnessBuilder) Metric(k metric.Kind) WitnessBuilder {
	b.metricKind = k
	return b
}

// MetricFunc sets a custom pointwise metric, overriding Metric.
func (b WitnessBuilder) MetricFunc(fn metric.Func) WitnessBuilder {
	b.metricFn = fn
	return b
}

// HomologyDimensions sets the homology dimensions to detect.
// Default: 0 and 1.
func (b WitnessBuilder) HomologyDimensions(dims ...int) WitnessBuilder {
	b.dims = dims
	return b
}

// Coeff sets the prime p of the coefficient field F_p. Default: 2.
func (b WitnessBuilder) Coeff(p int) WitnessBuilder {
	b.coeff = p
	return b
}

// NLandmarks sets the number of landmarks per sample. Default: 5.
func (b WitnessBuilder) NLandmarks(n int) WitnessBuilder {
	b.nLandmarks = n
	return b
}

// Strong selects the strong Witness complex over the weak one.
// Default: weak.
func (b WitnessBuilder) Strong(strong bool) WitnessBuilder {
	b.strong = strong
	return b
}

// Relaxation sets the relaxed-Witness relaxation radius. Must be
// non-negative. Default: 0.
func (b WitnessBuilder) Relaxation(r float64) WitnessBuilder {
	b.relaxation = r
	return b
}

// Subsampling selects a built-in landmark rule. Default:
// landmark.Random.
func (b WitnessBuilder) Subsampling(r landmark.Rule) WitnessBuilder {
	b.rule = r
	return b
}

// SubsamplingFunc sets a custom landmark selector, overriding
// Subsampling.
func (b WitnessBuilder) SubsamplingFunc(s landmark.Selector) WitnessBuilder {
	b.selector = s
	return b
}

// Seed fixes the random seed of the built-in subsampling rules for
// reproducible landmark choices. Default: time-derived.
func (b WitnessBuilder) Seed(seed int64) WitnessBuilder {
	b.seed = seed
	return b
}

// InfinityValues sets the finite death value substituted for features
// that never die. Default: the maximum value across the samples of
// each Transform call.
func (b WitnessBuilder) InfinityValues(v float64) WitnessBuilder {
	b.infinity = &v
	return b
}

// Workers sets the worker-pool size. 1 forces serial execution; <= 0
// uses every available compute unit. Default: all.
func (b WitnessBuilder) Workers(n int) WitnessBuilder {
	b.workers = n
	return b
}

// WithLogger sets the structured logger. Default: no logging.
func (b WitnessBuilder) WithLogger(l *Logger) WitnessBuilder {
	b.logger = l
	return b
}

// WithMetrics sets the metrics collector. Default: none.
func (b WitnessBuilder) WithMetrics(c MetricsCollector) WitnessBuilder {
	b.collector = c
	return b
}

// Build validates the configuration and returns the estimator.
func (b WitnessBuilder) Build() (*WitnessPersistence, error) {
	logger, collector, err := resolveCommon(b.engine, b.coeff, b.logger, b.collector)
	if err != nil {
		return nil, err
	}
	dims, maxDim, err := normalizeDimensions(b.dims)
	if err != nil {
		return nil, err
	}
	if b.metricKind == metric.Precomputed {
		return nil, fmt.Errorf("%w: witness pipelines require point clouds, not precomputed matrices", ErrInvalidConfiguration)
	}
	fn, _, err := resolveMetric(b.metricKind, b.metricFn)
	if err != nil {
		return nil, err
	}
	if b.nLandmarks < 1 {
		return nil, fmt.Errorf("%w: landmark count %d < 1", ErrInvalidConfiguration, b.nLandmarks)
	}
	if b.relaxation < 0 {
		return nil, fmt.Errorf("%w: relaxation %v must be non-negative", ErrInvalidConfiguration, b.relaxation)
	}
	selector := b.selector
	if selector == nil {
		selector, err = landmark.Provider(b.rule, b.seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
	}
	return &WitnessPersistence{
		est: estimator{
			engine:  b.engine,
			name:    "witness",
			dims:    dims,
			maxDim:  maxDim,
			coeff:   b.coeff,
			workers: b.workers,
			// Witness engines emit no synthetic infinite component.
			dropInfinite: false,
			logger:       logger,
			metrics:      collector,
		},
		metricFn:   fn,
		selector:   selector,
		nLandmarks: b.nLandmarks,
		strong:     b.strong,
		relaxation: b.relaxation,
		infinity:   b.infinity,
	}, nil
}

// WitnessPersistence computes persistence diagrams from weak or
// strong Witness filtrations of point clouds.
type WitnessPersistence struct {
	est        estimator
	metricFn   metric.Func
	selector   landmark.Selector
	nLandmarks int
	strong     bool
	relaxation float64
	infinity   *float64
}

// InfinityValue returns the configured finite death value. ok is
// false when the value is derived per Transform call instead.
func (p *WitnessPersistence) InfinityValue() (v float64, ok bool) {
	if p.infinity == nil {
		return 0, false
	}
	return *p.infinity, true
}

// Transform computes one aligned diagram array for a collection of
// point clouds. Each unit of work subsamples its cloud into
// landmarks, builds the nearest-landmark table and calls the engine.
func (p *WitnessPersistence) Transform(ctx context.Context, X [][][]float64) (*diagram.Aligned, error) {
	infinity := math.Inf(1)
	if p.infinity != nil {
		infinity = *p.infinity
	} else if len(X) > 0 {
		infinity = maxValue(X)
	}

	validate := func(i int) error { return validatePointCloud(i, X[i]) }
	prepare := func(_ context.Context, i int) (backend.Input, error) {
		landmarks, err := p.selector(i, X[i], p.nLandmarks)
		if err != nil {
			return backend.Input{}, fmt.Errorf("subsampling: %w", err)
		}
		table, err := landmark.BuildTable(X[i], landmarks, p.metricFn)
		if err != nil {
			return backend.Input{}, err
		}
		return backend.Input{
			NearestLandmarks: table,
			MaxDimension:     p.est.maxDim,
			Coeff:            p.est.coeff,
			Relaxation:       p.relaxation,
			Strong:           p.strong,
		}, nil
	}
	return p.est.transform(ctx, len(X), validate, prepare, infinity)
}
