package series

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by series construction and queries.
var (
	ErrLengthMismatch = errors.New("series: keys and values differ in length")
	ErrUnordered      = errors.New("series: keys must be strictly increasing")
	ErrEmpty          = errors.New("series: empty series")
)

// Series is an ordered mapping from wavelength keys to intensity values.
// The zero value is an empty series.
type Series struct {
	keys   []float64
	values []float64
}

// New builds a series from parallel key and value slices. Keys must be
// strictly increasing. Both slices are copied.
func New(keys, values []float64) (*Series, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}

	for i, k := range keys {
		if math.IsNaN(k) {
			return nil, fmt.Errorf("%w: NaN key at position %d", ErrUnordered, i)
		}
		if i > 0 && !(k > keys[i-1]) {
			return nil, fmt.Errorf("%w: key %g at position %d follows %g", ErrUnordered, k, i, keys[i-1])
		}
	}

	return &Series{
		keys:   append([]float64(nil), keys...),
		values: append([]float64(nil), values...),
	}, nil
}

// FromValues builds a series indexed by 0, 1, ..., len(values)-1.
func FromValues(values []float64) *Series {
	keys := make([]float64, len(values))
	for i := range keys {
		keys[i] = float64(i)
	}

	return &Series{keys: keys, values: append([]float64(nil), values...)}
}

// Len returns the number of points.
func (s *Series) Len() int { return len(s.keys) }

// Keys returns the wavelength keys. The slice must not be modified.
func (s *Series) Keys() []float64 { return s.keys }

// Values returns the intensity values. The slice must not be modified.
func (s *Series) Values() []float64 { return s.values }

// At returns the key and value at position i.
func (s *Series) At(i int) (key, value float64) {
	return s.keys[i], s.values[i]
}

// First returns the smallest key. It panics on an empty series.
func (s *Series) First() float64 { return s.keys[0] }

// Last returns the largest key. It panics on an empty series.
func (s *Series) Last() float64 { return s.keys[len(s.keys)-1] }

// Lookup returns the value stored at key.
func (s *Series) Lookup(key float64) (float64, bool) {
	i := sort.SearchFloat64s(s.keys, key)
	if i < len(s.keys) && s.keys[i] == key {
		return s.values[i], true
	}

	return 0, false
}

// Slice returns the points whose keys lie in [low, high]. An inverted range
// yields an empty series.
func (s *Series) Slice(low, high float64) *Series {
	start := sort.SearchFloat64s(s.keys, low)
	end := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] > high })
	if end < start {
		end = start
	}

	return s.span(start, end)
}

// Before returns the points whose keys are strictly less than key.
func (s *Series) Before(key float64) *Series {
	return s.span(0, sort.SearchFloat64s(s.keys, key))
}

// From returns the points whose keys are greater than or equal to key.
func (s *Series) From(key float64) *Series {
	return s.span(sort.SearchFloat64s(s.keys, key), len(s.keys))
}

func (s *Series) span(start, end int) *Series {
	return &Series{
		keys:   s.keys[start:end:end],
		values: s.values[start:end:end],
	}
}

// Filter returns the points whose value satisfies keep. Dropped points are
// removed together with their keys.
func (s *Series) Filter(keep func(value float64) bool) *Series {
	out := &Series{}
	for i, v := range s.values {
		if keep(v) {
			out.keys = append(out.keys, s.keys[i])
			out.values = append(out.values, v)
		}
	}

	return out
}

// Map returns a series with a copy of the keys and values fn(key, value).
func (s *Series) Map(fn func(key, value float64) float64) *Series {
	values := make([]float64, len(s.values))
	for i, k := range s.keys {
		values[i] = fn(k, s.values[i])
	}

	return &Series{keys: append([]float64(nil), s.keys...), values: values}
}

// Argmin returns the key and value of the smallest value. Ties resolve to the
// first occurrence in key order.
func (s *Series) Argmin() (key, value float64, err error) {
	if len(s.values) == 0 {
		return 0, 0, ErrEmpty
	}

	i := floats.MinIdx(s.values)

	return s.keys[i], s.values[i], nil
}

// Mean returns the arithmetic mean of the values, or 0 for an empty series.
func (s *Series) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}

	return floats.Sum(s.values) / float64(len(s.values))
}
