package diagram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/backend"
)

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		name    string
		dims    []int
		wantErr bool
	}{
		{"Single", []int{0}, false},
		{"Ascending", []int{0, 1, 2}, false},
		{"Sparse", []int{0, 2}, false},
		{"Empty", nil, true},
		{"Negative", []int{-1, 0}, true},
		{"Duplicate", []int{0, 0, 1}, true},
		{"Unsorted", []int{1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDimensions(tt.dims)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiagramAdd(t *testing.T) {
	d, err := New([]int{0, 2})
	require.NoError(t, err)

	d.Add(0, 0, 1)
	d.Add(2, 0.5, 2)
	d.Add(1, 0, 3) // not in the set, dropped
	d.Add(2, 1, 4)

	assert.Equal(t, 1, d.Count(0))
	assert.Equal(t, 0, d.Count(1))
	assert.Equal(t, 2, d.Count(2))
	assert.Equal(t, []Pair{{Birth: 0.5, Death: 2}, {Birth: 1, Death: 4}}, d.Pairs(2))
	assert.Nil(t, d.Pairs(1))
}

func TestFromTriples(t *testing.T) {
	inf := math.Inf(1)
	triples := []backend.Triple{
		{Dimension: 0, Birth: 0, Death: 1},
		{Dimension: 0, Birth: 0, Death: inf}, // synthetic component
		{Dimension: 1, Birth: 1, Death: 3},
		{Dimension: 1, Birth: 2, Death: inf}, // real unbounded feature
	}

	t.Run("DropInfiniteComponent", func(t *testing.T) {
		d, err := FromTriples(triples, []int{0, 1}, true)
		require.NoError(t, err)
		assert.Equal(t, 1, d.Count(0))
		assert.Equal(t, []Pair{{Birth: 0, Death: 1}}, d.Pairs(0))
		// Dimension 1 infinities are never the artifact.
		assert.Equal(t, 2, d.Count(1))
	})

	t.Run("KeepAll", func(t *testing.T) {
		d, err := FromTriples(triples, []int{0, 1}, false)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Count(0))
		assert.Equal(t, 2, d.Count(1))
	})

	t.Run("DropsAtMostOne", func(t *testing.T) {
		two := []backend.Triple{
			{Dimension: 0, Birth: 0, Death: inf},
			{Dimension: 0, Birth: 0, Death: inf},
		}
		d, err := FromTriples(two, []int{0}, true)
		require.NoError(t, err)
		assert.Equal(t, 1, d.Count(0))
	})

	t.Run("EmptyDims", func(t *testing.T) {
		_, err := FromTriples(triples, nil, false)
		assert.ErrorIs(t, err, ErrNoDimensions)
	})
}

func TestTripleDiagonal(t *testing.T) {
	assert.True(t, Triple{Birth: 2, Death: 2, Dimension: 1}.Diagonal())
	assert.False(t, Triple{Birth: 1, Death: 2, Dimension: 1}.Diagonal())
}

func TestTripleUnbounded(t *testing.T) {
	assert.True(t, backend.Triple{Death: math.Inf(1)}.Unbounded())
	assert.False(t, backend.Triple{Death: 5}.Unbounded())
	assert.False(t, backend.Triple{Death: math.Inf(-1)}.Unbounded())
}
