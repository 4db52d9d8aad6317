package topogo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/internal/dispatch"
)

// Defaults shared by every pipeline builder.
const (
	// DefaultCoeff is the default prime coefficient field.
	DefaultCoeff = 2
	// DefaultNLandmarks is the default Witness landmark count.
	DefaultNLandmarks = 5
	// DefaultEpsilon is the default sparse-Rips approximation
	// parameter.
	DefaultEpsilon = 0.1
)

// DefaultHomologyDimensions returns the default dimension set {0, 1}.
func DefaultHomologyDimensions() []int { return []int{0, 1} }

// estimator carries the resolved configuration shared by every
// pipeline and runs the map-reduce transform.
type estimator struct {
	engine       backend.Filtration
	name         string
	dims         []int
	maxDim       int
	coeff        int
	workers      int
	dropInfinite bool
	logger       *Logger
	metrics      MetricsCollector
}

// transform maps prepare + engine call over every sample index, joins,
// and aligns. validate runs for every sample before any parallel work.
func (e *estimator) transform(
	ctx context.Context,
	n int,
	validate func(i int) error,
	prepare func(ctx context.Context, i int) (backend.Input, error),
	infinity float64,
) (*diagram.Aligned, error) {
	start := time.Now()
	log := e.logger.WithPipeline(e.name)

	for i := 0; i < n; i++ {
		if err := validate(i); err != nil {
			e.metrics.RecordTransform(n, time.Since(start), err)
			return nil, err
		}
	}

	log.Debug("transform started", "samples", n, "workers", e.workers)

	results := make(diagram.Collection, n)
	err := dispatch.Map(ctx, n, e.workers, func(ctx context.Context, i int) error {
		t0 := time.Now()
		dgm, err := e.sample(ctx, i, prepare)
		e.metrics.RecordSample(time.Since(t0), err)
		if err != nil {
			log.WithSample(i).Error("sample failed", "error", err)
			return err
		}
		results[i] = dgm
		return nil
	})
	if err != nil {
		e.metrics.RecordTransform(n, time.Since(start), err)
		return nil, err
	}

	aligned, err := diagram.Align(results, e.dims, infinity)
	if err != nil {
		err = translateError(err)
		e.metrics.RecordTransform(n, time.Since(start), err)
		return nil, err
	}

	e.metrics.RecordTransform(n, time.Since(start), nil)
	log.Info("transform finished",
		"samples", n,
		"features", aligned.NumFeatures(),
		"duration", time.Since(start),
	)
	return aligned, nil
}

// sample runs one unit of work: input preparation plus engine call
// plus triple extraction.
func (e *estimator) sample(
	ctx context.Context,
	i int,
	prepare func(ctx context.Context, i int) (backend.Input, error),
) (*diagram.Diagram, error) {
	in, err := prepare(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("sample %d: %w", i, err)
	}
	triples, err := e.engine.Persistence(ctx, in)
	if err != nil {
		return nil, &BackendError{Sample: i, cause: err}
	}
	return diagram.FromTriples(triples, e.dims, e.dropInfinite)
}

// validatePointCloud checks a sample is a non-empty rectangular point
// array.
func validatePointCloud(i int, s [][]float64) error {
	if len(s) == 0 {
		return &ShapeMismatchError{Sample: i, Reason: "empty point cloud"}
	}
	cols := len(s[0])
	if cols == 0 {
		return &ShapeMismatchError{Sample: i, Rows: len(s), Reason: "zero-dimensional points"}
	}
	for _, row := range s {
		if len(row) != cols {
			return &ShapeMismatchError{Sample: i, Rows: len(s), Cols: cols, Reason: "ragged rows"}
		}
	}
	return nil
}

// validateSquare checks a sample is a non-empty square distance
// matrix.
func validateSquare(i int, s [][]float64) error {
	if len(s) == 0 {
		return &ShapeMismatchError{Sample: i, Reason: "empty distance matrix"}
	}
	for _, row := range s {
		if len(row) != len(s) {
			return &ShapeMismatchError{Sample: i, Rows: len(s), Cols: len(row), Reason: "distance matrix is not square"}
		}
	}
	return nil
}
