package topogo

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/metric"
)

// normalizeDimensions sorts and deduplicates the requested homology
// dimensions and returns them with the maximum dimension.
func normalizeDimensions(dims []int) ([]int, int, error) {
	out := slices.Clone(dims)
	sort.Ints(out)
	out = slices.Compact(out)
	if err := diagram.CheckDimensions(out); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return out, out[len(out)-1], nil
}

// resolveMetric resolves the metric tag to a concrete kernel once, at
// configuration time. A custom Func wins over the kind; Precomputed
// yields no kernel.
func resolveMetric(kind metric.Kind, custom metric.Func) (fn metric.Func, precomputed bool, err error) {
	if custom != nil {
		if kind == metric.Precomputed {
			return nil, false, fmt.Errorf("%w: custom metric conflicts with precomputed input", ErrInvalidConfiguration)
		}
		return custom, false, nil
	}
	if kind == metric.Precomputed {
		return nil, true, nil
	}
	fn, perr := metric.Provider(kind)
	if perr != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidConfiguration, perr)
	}
	return fn, false, nil
}

// resolveCommon validates the options every pipeline shares and fills
// in ambient defaults.
func resolveCommon(engine backend.Filtration, coeff int, logger *Logger, collector MetricsCollector) (*Logger, MetricsCollector, error) {
	if engine == nil {
		return nil, nil, fmt.Errorf("%w: nil filtration engine", ErrInvalidConfiguration)
	}
	if coeff < 2 {
		return nil, nil, fmt.Errorf("%w: coeff %d < 2", ErrInvalidConfiguration, coeff)
	}
	if logger == nil {
		logger = NoopLogger()
	}
	if collector == nil {
		collector = NoopMetricsCollector{}
	}
	return logger, collector, nil
}

// maxValue returns the largest value across a batch of samples. Used
// to derive the Witness infinity default.
func maxValue(samples [][][]float64) float64 {
	best := math.Inf(-1)
	for _, s := range samples {
		for _, row := range s {
			for _, v := range row {
				if v > best {
					best = v
				}
			}
		}
	}
	if math.IsInf(best, -1) {
		return 0
	}
	return best
}
