package landmark

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/topogo/metric"
)

// Entry pairs a landmark index with its distance from one witness.
type Entry struct {
	Landmark int
	Distance float64
}

// Table is the nearest-landmark table: one row per witness point,
// every landmark exactly once per row, sorted ascending by distance.
type Table [][]Entry

// BuildTable computes the full nearest-landmark table for a point set
// against a landmark set under the given metric.
//
// Ties in distance are broken by landmark index, so the table is
// deterministic for identical inputs. A metric failure on any pair
// fails the whole table; no partial rows are returned.
func BuildTable(points, landmarks [][]float64, fn metric.Func) (Table, error) {
	if len(landmarks) == 0 {
		return nil, errors.New("landmark set is empty")
	}
	dist, err := metric.Cross(points, landmarks, fn)
	if err != nil {
		return nil, fmt.Errorf("landmark table: %w", err)
	}
	table := make(Table, len(points))
	for w, row := range dist {
		entries := make([]Entry, len(landmarks))
		for l, d := range row {
			entries[l] = Entry{Landmark: l, Distance: d}
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Distance != entries[j].Distance {
				return entries[i].Distance < entries[j].Distance
			}
			return entries[i].Landmark < entries[j].Landmark
		})
		table[w] = entries
	}
	return table, nil
}
