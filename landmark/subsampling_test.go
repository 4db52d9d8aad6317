package landmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterPoints() [][]float64 {
	return [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
		{-10, 10}, {-10.1, 10},
	}
}

func TestRandomSelector(t *testing.T) {
	points := clusterPoints()
	sel := RandomSelector(42)

	got, err := sel(0, points, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Every landmark is one of the input points, no repeats.
	seen := make(map[*float64]bool)
	for _, l := range got {
		assert.Contains(t, points, l)
		assert.False(t, seen[&l[0]])
		seen[&l[0]] = true
	}
}

func TestRandomSelectorDeterministicPerSeed(t *testing.T) {
	points := clusterPoints()

	a, err := RandomSelector(7)(3, points, 4)
	require.NoError(t, err)
	b, err := RandomSelector(7)(3, points, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSelectorsIndependentOfCallOrder(t *testing.T) {
	// The choice for a given (seed, sample) must not depend on which
	// samples were selected before it.
	points := clusterPoints()
	for _, rule := range []Rule{Random, MaxMin} {
		t.Run(rule.String(), func(t *testing.T) {
			sel, err := Provider(rule, 11)
			require.NoError(t, err)

			forward := make([][][]float64, 4)
			for s := 0; s < 4; s++ {
				forward[s], err = sel(s, points, 3)
				require.NoError(t, err)
			}
			backward := make([][][]float64, 4)
			for s := 3; s >= 0; s-- {
				backward[s], err = sel(s, points, 3)
				require.NoError(t, err)
			}
			assert.Equal(t, forward, backward)
		})
	}
}

func TestRandomSelectorErrors(t *testing.T) {
	points := clusterPoints()
	sel := RandomSelector(1)

	_, err := sel(0, points, 0)
	assert.Error(t, err)
	_, err = sel(0, points, len(points)+1)
	assert.Error(t, err)
}

func TestMaxMinSelectorSpreads(t *testing.T) {
	// Three well-separated clusters: maxmin with 3 landmarks must
	// pick one from each.
	points := clusterPoints()
	sel := MaxMinSelector(3)

	got, err := sel(0, points, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	hits := make(map[int]int)
	for _, l := range got {
		switch {
		case l[0] < -5:
			hits[2]++
		case l[0] > 5:
			hits[1]++
		default:
			hits[0]++
		}
	}
	assert.Len(t, hits, 3, "landmarks %v not spread across clusters", got)
}

func TestMaxMinSelectorErrors(t *testing.T) {
	sel := MaxMinSelector(1)
	_, err := sel(0, clusterPoints(), -1)
	assert.Error(t, err)
	_, err = sel(0, [][]float64{{1}}, 2)
	assert.Error(t, err)
}

func TestRuleByName(t *testing.T) {
	r, ok := RuleByName("random")
	require.True(t, ok)
	assert.Equal(t, Random, r)

	r, ok = RuleByName("maxmin")
	require.True(t, ok)
	assert.Equal(t, MaxMin, r)

	_, ok = RuleByName("grid")
	assert.False(t, ok)
}

func TestProvider(t *testing.T) {
	for _, r := range []Rule{Random, MaxMin} {
		sel, err := Provider(r, 1)
		require.NoError(t, err, r.String())
		require.NotNil(t, sel)
	}
	_, err := Provider(Rule(99), 1)
	assert.Error(t, err)
}
