package fingertree

import (
	"fmt"
	"reflect"
)

// Check validates structural tree invariants:
//
//   - every cached measure equals the monoid sum of its parts,
//   - nodes at middle level k hold nodes of level k-1, down to elements at
//     level 0,
//   - every subtree is bound to the factory of its level.
//
// eq compares measures; if it is nil, reflect.DeepEqual is used. Check is
// intended for tests and debugging.
func Check[V, A any](t FingerTree[V, A], eq func(V, V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if eq == nil {
		eq = func(v, w V) bool { return reflect.DeepEqual(v, w) }
	}
	f := t.Factory()
	c := &checker[V]{
		eq:     eq,
		monoid: f.measured,
		leaf: func(x any) (V, bool) {
			a, ok := x.(A)
			if !ok {
				var zero V
				return zero, false
			}
			return f.measured.Measure(a), true
		},
	}
	err := checkTree(c, t, f, 0)
	if err != nil {
		tracer().Errorf("fingertree check failed: %v", err)
	}
	return err
}

type checker[V any] struct {
	eq     func(V, V) bool
	monoid Monoid[V]
	leaf   func(any) (V, bool) // measures a level-0 element
}

// checkTree validates t, whose elements are nodes of the given depth
// (0 = plain elements).
func checkTree[V, E any](c *checker[V], t FingerTree[V, E], f *Factory[V, E], depth int) error {
	if t.Factory() != f {
		return fmt.Errorf("%w: subtree at depth %d bound to foreign factory", ErrInvalidStructure, depth)
	}
	switch t := t.(type) {
	case *Empty[V, E]:
		return nil
	case *Single[V, E]:
		v, err := c.element(any(t.value), depth)
		if err != nil {
			return err
		}
		if !c.eq(v, t.measure) {
			return fmt.Errorf("%w: single measure mismatch at depth %d", ErrInvalidStructure, depth)
		}
		return nil
	case *Deep[V, E]:
		if t.prefix == nil || t.suffix == nil || t.middle == nil {
			return fmt.Errorf("%w: deep tree with missing part at depth %d", ErrInvalidStructure, depth)
		}
		vp, err := checkDigit(c, t.prefix, depth)
		if err != nil {
			return err
		}
		vs, err := checkDigit(c, t.suffix, depth)
		if err != nil {
			return err
		}
		if err := checkTree(c, t.middle, f.nodes, depth+1); err != nil {
			return err
		}
		v := add3(c.monoid, vp, t.middle.Measure(), vs)
		if !c.eq(v, t.measure) {
			return fmt.Errorf("%w: deep measure mismatch at depth %d", ErrInvalidStructure, depth)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown tree variant %T", ErrInvalidStructure, t)
}

func checkDigit[V, E any](c *checker[V], d Digit[V, E], depth int) (V, error) {
	xs, n := digitElems(d)
	v := c.monoid.Zero()
	for _, x := range xs[:n] {
		w, err := c.element(any(x), depth)
		if err != nil {
			return v, err
		}
		v = c.monoid.Add(v, w)
	}
	if !c.eq(v, d.Measure()) {
		return v, fmt.Errorf("%w: digit measure mismatch at depth %d", ErrInvalidStructure, depth)
	}
	return v, nil
}

// element validates x at the given depth and returns its measure.
func (c *checker[V]) element(x any, depth int) (V, error) {
	if depth == 0 {
		v, ok := c.leaf(x)
		if !ok {
			return v, fmt.Errorf("%w: unexpected element of type %T", ErrInvalidStructure, x)
		}
		return v, nil
	}
	n, ok := x.(Node[V, any])
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: expected node at depth %d, found %T", ErrInvalidStructure, depth, x)
	}
	v := c.monoid.Zero()
	var err error
	eachNode(n, func(child any) bool {
		var w V
		w, err = c.element(child, depth-1)
		v = c.monoid.Add(v, w)
		return err == nil
	})
	if err != nil {
		return v, err
	}
	if !c.eq(v, n.Measure()) {
		return v, fmt.Errorf("%w: node measure mismatch at depth %d", ErrInvalidStructure, depth)
	}
	return v, nil
}
