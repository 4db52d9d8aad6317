package topogo

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/backend"
	"github.com/hupe1980/topogo/diagram"
	"github.com/hupe1980/topogo/landmark"
)

func TestWitnessTransform(t *testing.T) {
	var mu sync.Mutex
	var inputs []backend.Input
	engine := backend.FiltrationFunc(func(_ context.Context, in backend.Input) ([]backend.Triple, error) {
		mu.Lock()
		inputs = append(inputs, in)
		mu.Unlock()
		return []backend.Triple{
			{Dimension: 0, Birth: 0, Death: 0.5},
			{Dimension: 1, Birth: 1, Death: math.Inf(1)},
		}, nil
	})

	est, err := Witness(engine).
		NLandmarks(3).
		Relaxation(0.5).
		Strong(true).
		Seed(42).
		Workers(1).
		Build()
	require.NoError(t, err)

	clouds := [][][]float64{
		{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {2, 2}},
	}
	a, err := est.Transform(context.Background(), clouds)
	require.NoError(t, err)

	require.Len(t, inputs, 1)
	in := inputs[0]
	assert.Nil(t, in.Points)
	assert.Nil(t, in.DistanceMatrix)
	assert.Equal(t, 0.5, in.Relaxation)
	assert.True(t, in.Strong)

	// One table row per witness, sorted, every landmark once.
	require.Len(t, in.NearestLandmarks, len(clouds[0]))
	for w, row := range in.NearestLandmarks {
		require.Len(t, row, 3, "row %d", w)
		seen := make(map[int]bool)
		for k, e := range row {
			assert.False(t, seen[e.Landmark])
			seen[e.Landmark] = true
			if k > 0 {
				assert.LessOrEqual(t, row[k-1].Distance, e.Distance)
			}
		}
	}

	// No infinity override: derived from the batch maximum (5), and
	// used to rewrite the unbounded dim-1 feature. The synthetic
	// component is not dropped for Witness pipelines.
	assert.Equal(t, 5.0, a.Infinity())
	assert.Equal(t, diagram.Triple{Birth: 0, Death: 0.5, Dimension: 0}, a.Block(0, 0)[0])
	assert.Equal(t, diagram.Triple{Birth: 1, Death: 5, Dimension: 1}, a.Block(0, 1)[0])
}

func TestWitnessExplicitInfinity(t *testing.T) {
	engine := boundedPairEngine(t)

	est, err := Witness(engine).InfinityValues(20).Seed(1).Build()
	require.NoError(t, err)

	a, err := est.Transform(context.Background(), [][][]float64{
		{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, a.Infinity())
}

// boundedPairEngine returns an engine emitting one bounded dim-0 pair.
func boundedPairEngine(t *testing.T) backend.Filtration {
	t.Helper()
	return backend.FiltrationFunc(func(_ context.Context, _ backend.Input) ([]backend.Triple, error) {
		return []backend.Triple{{Dimension: 0, Birth: 0, Death: 1}}, nil
	})
}

func TestWitnessCustomSelector(t *testing.T) {
	selector := landmark.Selector(func(_ int, points [][]float64, n int) ([][]float64, error) {
		return points[:n], nil // deterministic: first n points
	})

	var got backend.Input
	engine := backend.FiltrationFunc(func(_ context.Context, in backend.Input) ([]backend.Triple, error) {
		got = in
		return nil, nil
	})

	est, err := Witness(engine).SubsamplingFunc(selector).NLandmarks(2).Workers(1).Build()
	require.NoError(t, err)

	_, err = est.Transform(context.Background(), [][][]float64{
		{{0, 0}, {10, 0}, {1, 0}},
	})
	require.NoError(t, err)

	// Landmarks are (0,0) and (10,0); witness (1,0) sits at
	// distances 1 and 9.
	require.Len(t, got.NearestLandmarks, 3)
	assert.Equal(t, []landmark.Entry{
		{Landmark: 0, Distance: 1},
		{Landmark: 1, Distance: 9},
	}, got.NearestLandmarks[2])
}

func TestWitnessTransformOrderIndependentOfWorkers(t *testing.T) {
	// The engine echoes its nearest-landmark table back as death
	// values, so any run-to-run drift in landmark choices shows up in
	// the output.
	engine := backend.FiltrationFunc(func(_ context.Context, in backend.Input) ([]backend.Triple, error) {
		out := make([]backend.Triple, 0, len(in.NearestLandmarks))
		for _, row := range in.NearestLandmarks {
			out = append(out, backend.Triple{
				Dimension: 0,
				Birth:     0,
				Death:     row[0].Distance + float64(row[0].Landmark),
			})
		}
		return out, nil
	})

	clouds := make([][][]float64, 16)
	for i := range clouds {
		cloud := make([][]float64, 12)
		for j := range cloud {
			cloud[j] = []float64{float64(i) + 0.25*float64(j), float64(j % 3)}
		}
		clouds[i] = cloud
	}

	run := func(workers int) []float64 {
		est, err := Witness(engine).
			NLandmarks(4).
			Subsampling(landmark.Random).
			Seed(42).
			Workers(workers).
			Build()
		require.NoError(t, err)
		a, err := est.Transform(context.Background(), clouds)
		require.NoError(t, err)
		return a.Raw()
	}

	serial := run(1)
	assert.Equal(t, serial, run(8))
	assert.Equal(t, serial, run(1), "repeated serial runs must match")

	// Reusing one estimator must not drift between calls either.
	est, err := Witness(engine).
		NLandmarks(4).
		Subsampling(landmark.Random).
		Seed(42).
		Workers(4).
		Build()
	require.NoError(t, err)
	first, err := est.Transform(context.Background(), clouds)
	require.NoError(t, err)
	second, err := est.Transform(context.Background(), clouds)
	require.NoError(t, err)
	assert.Equal(t, first.Raw(), second.Raw())
	assert.Equal(t, serial, first.Raw())
}

func TestWitnessSubsamplingFailureAbortsSample(t *testing.T) {
	counting := &countingFiltration{}

	est, err := Witness(counting).NLandmarks(10).Seed(1).Build()
	require.NoError(t, err)

	// 3 points cannot yield 10 landmarks.
	_, err = est.Transform(context.Background(), [][][]float64{
		{{0, 0}, {1, 1}, {2, 2}},
	})
	assert.Error(t, err)
	assert.Zero(t, counting.calls, "engine must not see a sample whose table failed")
}

type countingFiltration struct {
	calls int
}

func (c *countingFiltration) Persistence(_ context.Context, _ backend.Input) ([]backend.Triple, error) {
	c.calls++
	return nil, nil
}
