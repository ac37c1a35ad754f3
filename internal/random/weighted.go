package random

import (
	"errors"
	"fmt"
	"sort"
)

type Weighted[T any] struct {
	Value  T
	Weight float64
}

// W is shorthand for building a Weighted pair.
func W[T any](value T, weight float64) Weighted[T] {
	return Weighted[T]{Value: value, Weight: weight}
}

// Distribution is a discrete distribution over (value, weight) pairs.
// It is immutable once built and may be shared between goroutines; the
// Source passed to Sample may not.
type Distribution[T any] struct {
	values     []T
	cumulative []float64
	total      float64
}

func NewDistribution[T any](items ...Weighted[T]) (*Distribution[T], error) {
	if len(items) == 0 {
		return nil, errors.New("distribution requires at least one value")
	}

	d := &Distribution[T]{
		values:     make([]T, len(items)),
		cumulative: make([]float64, len(items)),
	}
	for i, it := range items {
		if it.Weight < 0 {
			return nil, fmt.Errorf("negative weight: %v", it.Weight)
		}
		d.total += it.Weight
		d.values[i] = it.Value
		d.cumulative[i] = d.total
	}

	if d.total == 0 {
		return nil, errors.New("total weight is zero")
	}
	return d, nil
}

// MustDistribution is NewDistribution for package-level tables; it panics on
// an invalid weight set.
func MustDistribution[T any](items ...Weighted[T]) *Distribution[T] {
	d, err := NewDistribution(items...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Distribution[T]) Sample(s *Source) T {
	r := s.rng.Float64() * d.total
	i := sort.Search(len(d.cumulative), func(i int) bool { return d.cumulative[i] > r })
	if i == len(d.values) {
		i--
	}
	return d.values[i]
}

// Probability returns the share of the total weight carried by value at
// position i.
func (d *Distribution[T]) Probability(i int) float64 {
	prev := 0.0
	if i > 0 {
		prev = d.cumulative[i-1]
	}
	return (d.cumulative[i] - prev) / d.total
}

func (d *Distribution[T]) Len() int {
	return len(d.values)
}
