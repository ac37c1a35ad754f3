package random

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestIntRangeInclusive(t *testing.T) {
	src := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := src.IntRange(1, 5)
		if v < 1 || v > 5 {
			t.Fatalf("value out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected every value in [1,5] to appear, got %v", seen)
	}
}

func TestDayStaysWithinBounds(t *testing.T) {
	src := New(2)
	from := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	to := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	lo := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1000; i++ {
		d := src.Day(from, to)
		if d.Before(lo) || d.After(hi) {
			t.Fatalf("day out of range: %s", d)
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("expected midnight, got %s", d)
		}
	}
	if got := src.Day(to, from); !got.Equal(hi) {
		t.Fatalf("expected inverted range to return from, got %s", got)
	}
}

func TestMoneyRoundsToCents(t *testing.T) {
	src := New(3)
	for i := 0; i < 500; i++ {
		m := src.Money(50, 2000)
		if m.Exponent() < -2 {
			t.Fatalf("expected at most 2 decimal places, got %s", m)
		}
		f := m.InexactFloat64()
		if f < 50 || f > 2000 {
			t.Fatalf("money out of range: %s", m)
		}
	}
}

func TestDistributionRejectsBadWeights(t *testing.T) {
	if _, err := NewDistribution[int](); err == nil {
		t.Fatal("expected error for empty distribution")
	}
	if _, err := NewDistribution(W(1, -1)); err == nil {
		t.Fatal("expected error for negative weight")
	}
	if _, err := NewDistribution(W(1, 0), W(2, 0)); err == nil {
		t.Fatal("expected error for zero total weight")
	}
}

func TestDistributionFollowsWeights(t *testing.T) {
	d := MustDistribution(W(0, 3), W(5, 1), W(10, 1), W(15, 1), W(20, 1), W(99, 0))
	if p := d.Probability(0); p < 0.428 || p > 0.429 {
		t.Fatalf("unexpected probability for 0: %v", p)
	}

	src := New(4)
	counts := map[int]int{}
	const n = 70000
	for i := 0; i < n; i++ {
		counts[d.Sample(src)]++
	}
	if counts[99] != 0 {
		t.Fatalf("zero-weight value was sampled %d times", counts[99])
	}
	zeroShare := float64(counts[0]) / n
	if zeroShare < 0.40 || zeroShare > 0.46 {
		t.Fatalf("expected ~3/7 zero discounts, got %.3f", zeroShare)
	}
	for _, v := range []int{5, 10, 15, 20} {
		share := float64(counts[v]) / n
		if share < 0.12 || share > 0.165 {
			t.Fatalf("expected ~1/7 for %d, got %.3f", v, share)
		}
	}
}

func TestPlateFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	src := New(5)
	for i := 0; i < 200; i++ {
		if p := src.Plate(); !re.MatchString(p) {
			t.Fatalf("unexpected plate format: %q", p)
		}
	}
}

func TestCNPJCheckDigits(t *testing.T) {
	re := regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/0001-\d{2}$`)
	src := New(6)
	for i := 0; i < 200; i++ {
		c := src.CNPJ()
		if !re.MatchString(c) {
			t.Fatalf("unexpected cnpj format: %q", c)
		}
		digits := make([]int, 0, 14)
		for _, r := range c {
			if r >= '0' && r <= '9' {
				digits = append(digits, int(r-'0'))
			}
		}
		if cnpjCheckDigit(digits[:12]) != digits[12] || cnpjCheckDigit(digits[:13]) != digits[13] {
			t.Fatalf("invalid check digits: %q", c)
		}
	}
	// well-known valid number
	known := []int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1}
	if cnpjCheckDigit(known) != 8 {
		t.Fatalf("expected first check digit 8, got %d", cnpjCheckDigit(known))
	}
	if cnpjCheckDigit(append(known, 8)) != 1 {
		t.Fatalf("expected second check digit 1, got %d", cnpjCheckDigit(append(known, 8)))
	}
}

func TestTicketIDIsReproducible(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		x, y := a.TicketID(), b.TicketID()
		if len(x) != 8 {
			t.Fatalf("expected 8 chars, got %q", x)
		}
		if x != y {
			t.Fatalf("expected seeded sources to agree: %q != %q", x, y)
		}
	}
}

func TestCompanyHasSuffix(t *testing.T) {
	src := New(8)
	for i := 0; i < 100; i++ {
		c := src.Company()
		ok := false
		for _, s := range companySuffixes {
			if strings.HasSuffix(c, s) {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("company without suffix: %q", c)
		}
	}
}
