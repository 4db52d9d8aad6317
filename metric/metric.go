package metric

import (
	"errors"
	"fmt"
	"math"
)

// Kind identifies a built-in metric.
type Kind int

const (
	// Euclidean is the L2 distance.
	Euclidean Kind = iota
	// SquaredEuclidean is the squared L2 distance.
	SquaredEuclidean
	// Manhattan is the L1 distance.
	Manhattan
	// Chebyshev is the L-infinity distance.
	Chebyshev
	// Cosine is the cosine distance (1 - cosine similarity).
	Cosine
	// Precomputed marks input samples as ready-made distance
	// matrices. It has no pointwise kernel.
	Precomputed
)

func (k Kind) String() string {
	switch k {
	case Euclidean:
		return "euclidean"
	case SquaredEuclidean:
		return "sqeuclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Cosine:
		return "cosine"
	case Precomputed:
		return "precomputed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ByName returns the built-in Kind for a stable metric name.
func ByName(name string) (Kind, bool) {
	switch name {
	case "euclidean", "l2":
		return Euclidean, true
	case "sqeuclidean":
		return SquaredEuclidean, true
	case "manhattan", "cityblock", "l1":
		return Manhattan, true
	case "chebyshev":
		return Chebyshev, true
	case "cosine":
		return Cosine, true
	case "precomputed":
		return Precomputed, true
	default:
		return 0, false
	}
}

// ErrSizeMismatch is returned by every built-in kernel when the two
// rows differ in length.
var ErrSizeMismatch = errors.New("vector sizes do not match")

// Func is a pointwise distance function. An error from a Func aborts
// the whole matrix computation it is part of.
type Func func(a, b []float64) (float64, error)

// Provider returns the kernel for the given built-in kind.
// Precomputed has no kernel and yields an error.
func Provider(k Kind) (Func, error) {
	switch k {
	case Euclidean:
		return EuclideanDistance, nil
	case SquaredEuclidean:
		return SquaredL2, nil
	case Manhattan:
		return ManhattanDistance, nil
	case Chebyshev:
		return ChebyshevDistance, nil
	case Cosine:
		return CosineDistance, nil
	default:
		return nil, fmt.Errorf("no pointwise kernel for metric: %v", k)
	}
}

// SquaredL2 calculates the squared L2 distance between two rows.
func SquaredL2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum, nil
}

// EuclideanDistance calculates the L2 distance between two rows.
func EuclideanDistance(a, b []float64) (float64, error) {
	sq, err := SquaredL2(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// ManhattanDistance calculates the L1 distance between two rows.
func ManhattanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum, nil
}

// ChebyshevDistance calculates the L-infinity distance between two rows.
func ChebyshevDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var best float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > best {
			best = d
		}
	}
	return best, nil
}

// CosineDistance calculates 1 minus the cosine similarity of two rows.
// Rows with zero L2 norm have similarity 0 and hence distance 1.
func CosineDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1, nil
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb)), nil
}
