package measure

import (
	"cmp"

	"github.com/npillmayer/fingertree"
)

// Span is the minimum and maximum of a set of ordered values. The zero value
// is the empty span.
type Span[K cmp.Ordered] struct {
	Min, Max K
	Valid    bool
}

// SpanMonoid merges spans.
type SpanMonoid[K cmp.Ordered] struct{}

// Zero returns the empty span.
func (SpanMonoid[K]) Zero() Span[K] { return Span[K]{} }

// Add returns the smallest span covering left and right.
func (SpanMonoid[K]) Add(left, right Span[K]) Span[K] {
	switch {
	case !left.Valid:
		return right
	case !right.Valid:
		return left
	}
	return Span[K]{Min: min(left.Min, right.Min), Max: max(left.Max, right.Max), Valid: true}
}

type spanning[A any, K cmp.Ordered] struct {
	SpanMonoid[K]
	value func(A) K
}

func (s spanning[A, K]) Measure(a A) Span[K] {
	k := s.value(a)
	return Span[K]{Min: k, Max: k, Valid: true}
}

// Extent measures elements by an ordered value. A tree's measure is the
// smallest and largest value of its elements, in any order.
func Extent[A any, K cmp.Ordered](value func(A) K) fingertree.Measured[Span[K], A] {
	return spanning[A, K]{value: value}
}
