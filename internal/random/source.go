// Package random is the randomness provider used by every record generator:
// uniform draws, weighted choice and pt_BR flavored identity primitives.
//
// A Source wraps a *rand.Rand and is not safe for concurrent use. Give each
// goroutine its own Source.
package random

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type Source struct {
	rng *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func FromRand(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

func (s *Source) Rand() *rand.Rand {
	return s.rng
}

// Float draws uniformly from [min, max).
func (s *Source) Float(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// IntRange draws uniformly from [min, max], both ends included.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Money draws a currency amount in [min, max] rounded to cents.
func (s *Source) Money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(s.Float(min, max)).Round(2)
}

// Day draws a calendar day uniformly from [from, to]. Both bounds are
// truncated to midnight first; if to is before from, from is returned.
func (s *Source) Day(from, to time.Time) time.Time {
	from = truncateDay(from)
	to = truncateDay(to)
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, s.rng.Intn(days+1))
}

// Instant draws a timestamp with second resolution from [from, to).
func (s *Source) Instant(from, to time.Time) time.Time {
	span := int64(to.Sub(from) / time.Second)
	if span <= 0 {
		return from.Truncate(time.Second)
	}
	return from.Truncate(time.Second).Add(time.Duration(s.rng.Int63n(span)) * time.Second)
}

// Pick returns one element of values chosen uniformly. values must not be empty.
func Pick[T any](s *Source, values []T) T {
	return values[s.rng.Intn(len(values))]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
