package fingertree

import "iter"

func (t *Deep[V, A]) Factory() *Factory[V, A] { return t.f }
func (t *Deep[V, A]) IsEmpty() bool           { return false }
func (t *Deep[V, A]) Measure() V              { return t.measure }

func (t *Deep[V, A]) Len() int {
	n := 0
	t.ForEach(func(A) bool {
		n++
		return true
	})
	return n
}

// Prefix returns the left digit of t.
func (t *Deep[V, A]) Prefix() Digit[V, A] { return t.prefix }

// Middle returns the tree of nodes between the digits of t.
func (t *Deep[V, A]) Middle() FingerTree[V, Node[V, any]] { return t.middle }

// Suffix returns the right digit of t.
func (t *Deep[V, A]) Suffix() Digit[V, A] { return t.suffix }

// Cons prepends a. A full prefix moves three of its elements into the
// middle as one node, keeping the prefix at two elements.
func (t *Deep[V, A]) Cons(a A) FingerTree[V, A] {
	f, m := t.f, t.f.measured
	v := m.Add(m.Measure(a), t.measure)
	if pr, ok := t.prefix.(*Four[V, A]); ok {
		middle := t.middle.Cons(f.node3(pr.b, pr.c, pr.d))
		return f.deepWithMeasure(v, two(m, a, pr.a), middle, t.suffix)
	}
	return f.deepWithMeasure(v, consDigit(m, a, t.prefix), t.middle, t.suffix)
}

// Snoc appends a. A full suffix moves three of its elements into the middle
// as one node.
func (t *Deep[V, A]) Snoc(a A) FingerTree[V, A] {
	f, m := t.f, t.f.measured
	v := m.Add(t.measure, m.Measure(a))
	if sf, ok := t.suffix.(*Four[V, A]); ok {
		middle := t.middle.Snoc(f.node3(sf.a, sf.b, sf.c))
		return f.deepWithMeasure(v, t.prefix, middle, two(m, sf.d, a))
	}
	return f.deepWithMeasure(v, t.prefix, t.middle, snocDigit(m, t.suffix, a))
}

func (t *Deep[V, A]) Head() A { return t.prefix.Head() }
func (t *Deep[V, A]) Last() A { return t.suffix.Last() }

// Tail drops the first element. An exhausted prefix is refilled by the
// first node of the middle tree.
func (t *Deep[V, A]) Tail() FingerTree[V, A] {
	if pr, ok := t.prefix.Tail(t.f.measured); ok {
		return t.f.deep(pr, t.middle, t.suffix)
	}
	return t.f.deepL(nil, t.middle, t.suffix)
}

// Init drops the last element. An exhausted suffix is refilled by the last
// node of the middle tree.
func (t *Deep[V, A]) Init() FingerTree[V, A] {
	if sf, ok := t.suffix.Init(t.f.measured); ok {
		return t.f.deep(t.prefix, t.middle, sf)
	}
	return t.f.deepR(t.prefix, t.middle, nil)
}

func (t *Deep[V, A]) ViewLeft() (A, FingerTree[V, A], bool) {
	return t.Head(), t.Tail(), true
}

func (t *Deep[V, A]) ViewRight() (FingerTree[V, A], A, bool) {
	return t.Init(), t.Last(), true
}

func (t *Deep[V, A]) Append(other FingerTree[V, A]) FingerTree[V, A] {
	t.f.mustOwn(other, "Append")
	switch o := other.(type) {
	case *Empty[V, A]:
		return t
	case *Single[V, A]:
		return t.Snoc(o.value)
	case *Deep[V, A]:
		return concat(t, o)
	}
	panic("unknown tree variant")
}

func (t *Deep[V, A]) ReduceLeft(f func(A, A) A) A {
	var acc A
	first := true
	t.ForEach(func(a A) bool {
		if first {
			acc, first = a, false
		} else {
			acc = f(acc, a)
		}
		return true
	})
	return acc
}

func (t *Deep[V, A]) ReduceRight(f func(A, A) A) A {
	var acc A
	first := true
	eachReverse[V, A](t, func(a A) bool {
		if first {
			acc, first = a, false
		} else {
			acc = f(a, acc)
		}
		return true
	})
	return acc
}

func (t *Deep[V, A]) ForEach(fn func(A) bool) {
	if fn != nil {
		each[V, A](t, fn)
	}
}

func (t *Deep[V, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) { each[V, A](t, yield) }
}

func (t *Deep[V, A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) { eachReverse[V, A](t, yield) }
}
