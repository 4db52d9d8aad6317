package metric

import "fmt"

// Pairwise computes the full symmetric distance matrix of a point set.
// The diagonal is zero and only the upper triangle is evaluated.
func Pairwise(points [][]float64, fn Func) ([][]float64, error) {
	n := len(points)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := fn(points[i], points[j])
			if err != nil {
				return nil, fmt.Errorf("pairwise distance (%d,%d): %w", i, j, err)
			}
			out[i][j] = d
			out[j][i] = d
		}
	}
	return out, nil
}

// Cross computes the (len(a), len(b)) distance matrix between two
// point sets.
func Cross(a, b [][]float64, fn Func) ([][]float64, error) {
	out := make([][]float64, len(a))
	for i, p := range a {
		row := make([]float64, len(b))
		for j, q := range b {
			d, err := fn(p, q)
			if err != nil {
				return nil, fmt.Errorf("cross distance (%d,%d): %w", i, j, err)
			}
			row[j] = d
		}
		out[i] = row
	}
	return out, nil
}
