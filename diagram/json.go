package diagram

import (
	"errors"
	"math"

	gojson "github.com/goccy/go-json"
)

var errNonFinite = errors.New("aligned array contains non-finite values")

// alignedJSON is the wire form of an Aligned array. Infinity is
// carried explicitly so consumers can re-identify substituted deaths.
type alignedJSON struct {
	Samples    int       `json:"samples"`
	Dimensions []int     `json:"dimensions"`
	Widths     []int     `json:"widths"`
	Infinity   float64   `json:"infinity"`
	Data       []float64 `json:"data"`
}

// MarshalJSON encodes the array. Every value must be finite; JSON has
// no representation for IEEE infinities.
func (a *Aligned) MarshalJSON() ([]byte, error) {
	if math.IsInf(a.infinity, 0) || math.IsNaN(a.infinity) {
		return nil, errNonFinite
	}
	for _, v := range a.data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, errNonFinite
		}
	}
	return gojson.Marshal(alignedJSON{
		Samples:    a.samples,
		Dimensions: a.dims,
		Widths:     a.widths,
		Infinity:   a.infinity,
		Data:       a.data,
	})
}

// UnmarshalJSON decodes an array previously produced by MarshalJSON.
func (a *Aligned) UnmarshalJSON(b []byte) error {
	var aux alignedJSON
	if err := gojson.Unmarshal(b, &aux); err != nil {
		return err
	}
	dec, err := FromRaw(aux.Dimensions, aux.Widths, aux.Samples, aux.Infinity, aux.Data)
	if err != nil {
		return err
	}
	*a = *dec
	return nil
}
