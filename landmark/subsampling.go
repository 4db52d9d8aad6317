package landmark

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/topogo/metric"
)

// Selector picks n landmark points from a point cloud. sample is the
// caller's index for the cloud within its batch; implementations must
// be pure functions of (sample, points, n) and safe for concurrent
// use, so landmark choices never depend on call order.
type Selector func(sample int, points [][]float64, n int) ([][]float64, error)

// Rule identifies a built-in subsampling rule.
type Rule int

const (
	// Random picks landmarks uniformly without replacement.
	Random Rule = iota
	// MaxMin picks landmarks greedily: a random first landmark, then
	// repeatedly the point farthest from the set picked so far.
	MaxMin
)

func (r Rule) String() string {
	switch r {
	case Random:
		return "random"
	case MaxMin:
		return "maxmin"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// RuleByName returns the built-in Rule for a stable name.
func RuleByName(name string) (Rule, bool) {
	switch name {
	case "random":
		return Random, true
	case "maxmin":
		return MaxMin, true
	default:
		return 0, false
	}
}

// Provider returns the Selector for a built-in rule, seeded for
// reproducibility.
func Provider(r Rule, seed int64) (Selector, error) {
	switch r {
	case Random:
		return RandomSelector(seed), nil
	case MaxMin:
		return MaxMinSelector(seed), nil
	default:
		return nil, fmt.Errorf("unsupported subsampling rule: %v", r)
	}
}

// sampleRNG derives an independent generator for one sample from the
// configured seed, splitmix64-style. Each sample draws from its own
// stream, so concurrent samples never contend and the choice for a
// given (seed, sample) is fixed.
func sampleRNG(seed int64, sample int) *rand.Rand {
	const gamma = uint64(0x9E3779B97F4A7C15)
	return rand.New(rand.NewSource(int64(uint64(seed) ^ (uint64(sample)+1)*gamma)))
}

// RandomSelector returns a Selector picking n points uniformly without
// replacement.
func RandomSelector(seed int64) Selector {
	return func(sample int, points [][]float64, n int) ([][]float64, error) {
		if n <= 0 {
			return nil, errors.New("landmark count must be positive")
		}
		if n > len(points) {
			return nil, fmt.Errorf("landmark count %d exceeds point count %d", n, len(points))
		}
		perm := sampleRNG(seed, sample).Perm(len(points))
		out := make([][]float64, n)
		for i := 0; i < n; i++ {
			out[i] = points[perm[i]]
		}
		return out, nil
	}
}

// MaxMinSelector returns a greedy farthest-point Selector. The first
// landmark is drawn at random; each further landmark maximizes the
// Euclidean distance to the closest landmark picked so far.
func MaxMinSelector(seed int64) Selector {
	return func(sample int, points [][]float64, n int) ([][]float64, error) {
		if n <= 0 {
			return nil, errors.New("landmark count must be positive")
		}
		if n > len(points) {
			return nil, fmt.Errorf("landmark count %d exceeds point count %d", n, len(points))
		}
		first := sampleRNG(seed, sample).Intn(len(points))

		picked := make([]int, 1, n)
		picked[0] = first
		minDist := make([]float64, len(points))
		for i := range minDist {
			d, err := metric.SquaredL2(points[i], points[first])
			if err != nil {
				return nil, err
			}
			minDist[i] = d
		}
		for len(picked) < n {
			next, best := -1, math.Inf(-1)
			for i, d := range minDist {
				if d > best {
					next, best = i, d
				}
			}
			picked = append(picked, next)
			for i := range minDist {
				d, err := metric.SquaredL2(points[i], points[next])
				if err != nil {
					return nil, err
				}
				if d < minDist[i] {
					minDist[i] = d
				}
			}
		}
		out := make([][]float64, n)
		for i, idx := range picked {
			out[i] = points[idx]
		}
		return out, nil
	}
}
