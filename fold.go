package fingertree

// FoldLeft folds the elements of t from left to right, starting with z.
func FoldLeft[V, A, B any](t FingerTree[V, A], f func(B, A) B, z B) B {
	switch t := t.(type) {
	case *Empty[V, A]:
		return z
	case *Single[V, A]:
		return f(z, t.value)
	case *Deep[V, A]:
		acc := FoldLeftDigit(t.prefix, f, z)
		elem := func(b B, x any) B { return f(b, t.f.cast(x)) }
		acc = FoldLeft(t.middle, func(b B, n Node[V, any]) B {
			return FoldLeftNode(n, elem, b)
		}, acc)
		return FoldLeftDigit(t.suffix, f, acc)
	}
	panic("unknown tree variant")
}

// FoldRight folds the elements of t from right to left, starting with z.
func FoldRight[V, A, B any](t FingerTree[V, A], f func(A, B) B, z B) B {
	switch t := t.(type) {
	case *Empty[V, A]:
		return z
	case *Single[V, A]:
		return f(t.value, z)
	case *Deep[V, A]:
		acc := FoldRightDigit(t.suffix, f, z)
		elem := func(x any, b B) B { return f(t.f.cast(x), b) }
		acc = FoldRight(t.middle, func(n Node[V, any], b B) B {
			return FoldRightNode(n, elem, b)
		}, acc)
		return FoldRightDigit(t.prefix, f, acc)
	}
	panic("unknown tree variant")
}

// Map applies fn to every element of t and returns a tree of the results,
// bound to factory g. The shape of t is preserved; all measures are
// recomputed with g's measure.
func Map[V, A, W, B any](t FingerTree[V, A], fn func(A) B, g *Factory[W, B]) FingerTree[W, B] {
	switch t := t.(type) {
	case *Empty[V, A]:
		return g.empty
	case *Single[V, A]:
		return g.Single(fn(t.value))
	case *Deep[V, A]:
		prefix := MapDigit(t.prefix, fn, g.measured)
		suffix := MapDigit(t.suffix, fn, g.measured)
		elem := func(x any) any { return fn(t.f.cast(x)) }
		middle := Map(t.middle, func(n Node[V, any]) Node[W, any] {
			return MapNode(n, elem, g.elems)
		}, g.nodes)
		return g.deep(prefix, middle, suffix)
	}
	panic("unknown tree variant")
}

// ToSlice returns the elements of t in order.
func ToSlice[V, A any](t FingerTree[V, A]) []A {
	var out []A
	t.ForEach(func(a A) bool {
		out = append(out, a)
		return true
	})
	return out
}

// each calls fn for the elements of t, in order, until fn returns false.
func each[V, A any](t FingerTree[V, A], fn func(A) bool) bool {
	switch t := t.(type) {
	case *Empty[V, A]:
		return true
	case *Single[V, A]:
		return fn(t.value)
	case *Deep[V, A]:
		if !eachDigit(t.prefix, fn) {
			return false
		}
		elem := func(x any) bool { return fn(t.f.cast(x)) }
		if !each(t.middle, func(n Node[V, any]) bool { return eachNode(n, elem) }) {
			return false
		}
		return eachDigit(t.suffix, fn)
	}
	panic("unknown tree variant")
}

// eachReverse calls fn for the elements of t, last to first, until fn
// returns false.
func eachReverse[V, A any](t FingerTree[V, A], fn func(A) bool) bool {
	switch t := t.(type) {
	case *Empty[V, A]:
		return true
	case *Single[V, A]:
		return fn(t.value)
	case *Deep[V, A]:
		if !eachDigitReverse(t.suffix, fn) {
			return false
		}
		elem := func(x any) bool { return fn(t.f.cast(x)) }
		if !eachReverse(t.middle, func(n Node[V, any]) bool { return eachNodeReverse(n, elem) }) {
			return false
		}
		return eachDigitReverse(t.prefix, fn)
	}
	panic("unknown tree variant")
}
