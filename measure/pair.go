package measure

import "github.com/npillmayer/fingertree"

// Pair is the product of two measures.
type Pair[V1, V2 any] struct {
	First  V1
	Second V2
}

type pairMonoid[V1, V2 any] struct {
	m1 fingertree.Monoid[V1]
	m2 fingertree.Monoid[V2]
}

func (p pairMonoid[V1, V2]) Zero() Pair[V1, V2] {
	return Pair[V1, V2]{First: p.m1.Zero(), Second: p.m2.Zero()}
}

func (p pairMonoid[V1, V2]) Add(left, right Pair[V1, V2]) Pair[V1, V2] {
	return Pair[V1, V2]{
		First:  p.m1.Add(left.First, right.First),
		Second: p.m2.Add(left.Second, right.Second),
	}
}

type pairing[V1, V2, A any] struct {
	pairMonoid[V1, V2]
	f1 fingertree.Measured[V1, A]
	f2 fingertree.Measured[V2, A]
}

func (p pairing[V1, V2, A]) Measure(a A) Pair[V1, V2] {
	return Pair[V1, V2]{First: p.f1.Measure(a), Second: p.f2.Measure(a)}
}

// Both measures elements by two measures at once, e.g. Count and Priority
// for an indexable priority queue.
func Both[V1, V2, A any](m1 fingertree.Measured[V1, A], m2 fingertree.Measured[V2, A]) fingertree.Measured[Pair[V1, V2], A] {
	return pairing[V1, V2, A]{
		pairMonoid: pairMonoid[V1, V2]{m1: m1, m2: m2},
		f1:         m1,
		f2:         m2,
	}
}

// OnFirst lifts a predicate on the first component to pairs.
func OnFirst[V1, V2 any](pred func(V1) bool) func(Pair[V1, V2]) bool {
	return func(p Pair[V1, V2]) bool { return pred(p.First) }
}

// OnSecond lifts a predicate on the second component to pairs.
func OnSecond[V1, V2 any](pred func(V2) bool) func(Pair[V1, V2]) bool {
	return func(p Pair[V1, V2]) bool { return pred(p.Second) }
}
