package fingertree

import "fmt"

// Monoid defines how measures are aggregated up the tree.
//
// For measures s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Measured bundles a monoid with a function measuring single elements.
//
// A tree bound to a Measured[V, A] annotates every subtree with the monoid sum
// of its elements' measures, from left to right.
type Measured[V, A any] interface {
	Monoid[V]
	Measure(A) V
}

// NewMeasured creates a Measured from a monoid and a measuring function.
func NewMeasured[V, A any](monoid Monoid[V], measure func(A) V) Measured[V, A] {
	return measuring[V, A]{Monoid: monoid, fn: measure}
}

type measuring[V, A any] struct {
	Monoid[V]
	fn func(A) V
}

func (m measuring[V, A]) Measure(a A) V {
	return m.fn(a)
}

// NodeMeasured measures nodes by their cached measure.
func NodeMeasured[V, E any](monoid Monoid[V]) Measured[V, Node[V, E]] {
	return nodeMeasured[V, E]{Monoid: monoid}
}

type nodeMeasured[V, E any] struct {
	Monoid[V]
}

func (nodeMeasured[V, E]) Measure(n Node[V, E]) V {
	return n.Measure()
}

// DigitMeasured measures digits by their cached measure.
func DigitMeasured[V, E any](monoid Monoid[V]) Measured[V, Digit[V, E]] {
	return digitMeasured[V, E]{Monoid: monoid}
}

type digitMeasured[V, E any] struct {
	Monoid[V]
}

func (digitMeasured[V, E]) Measure(d Digit[V, E]) V {
	return d.Measure()
}

// erasedMeasured measures elements stored as `any`. It is used for the
// children of nodes, which are type-erased in the middle spine.
type erasedMeasured[V, E any] struct {
	Monoid[V]
	m Measured[V, E]
}

func (em erasedMeasured[V, E]) Measure(x any) V {
	e, ok := x.(E)
	assert(ok, "erased measure: node child has unexpected type")
	return em.m.Measure(e)
}

func validateMeasured[V, A any](m Measured[V, A]) error {
	if m == nil {
		return fmt.Errorf("%w: measured is required", ErrInvalidConfig)
	}
	switch mm := m.(type) {
	case measuring[V, A]:
		if mm.Monoid == nil {
			return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
		}
		if mm.fn == nil {
			return fmt.Errorf("%w: measure function is required", ErrInvalidConfig)
		}
	}
	return nil
}

func add3[V any](m Monoid[V], a, b, c V) V {
	return m.Add(m.Add(a, b), c)
}

func add4[V any](m Monoid[V], a, b, c, d V) V {
	return m.Add(m.Add(m.Add(a, b), c), d)
}
