package diagram

import (
	"math"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedJSONRoundTrip(t *testing.T) {
	dims := []int{0, 1}
	c := Collection{
		mustDiagram(t, dims, map[int][]Pair{0: {{0, 1}, {0.5, 2}}, 1: {{1, 3}}}),
		mustDiagram(t, dims, map[int][]Pair{1: {{2, 4}}}),
	}
	a, err := Align(c, dims, 6)
	require.NoError(t, err)

	b, err := gojson.Marshal(a)
	require.NoError(t, err)

	var back Aligned
	require.NoError(t, gojson.Unmarshal(b, &back))
	assert.Equal(t, a, &back)
}

func TestAlignedJSONNonFinite(t *testing.T) {
	c := Collection{
		mustDiagram(t, []int{0}, map[int][]Pair{0: {{0, 1}}}),
	}
	a, err := Align(c, []int{0}, math.Inf(1))
	require.NoError(t, err)

	_, err = a.MarshalJSON()
	assert.ErrorIs(t, err, errNonFinite)
}

func TestAlignedJSONBadPayload(t *testing.T) {
	var a Aligned
	err := gojson.Unmarshal([]byte(`{"samples":2,"dimensions":[0],"widths":[1],"infinity":1,"data":[1,2,3]}`), &a)
	assert.Error(t, err)
}
