package fingertree

// Concatenation of two deep trees keeps the outer digits and builds a new
// middle tree:
//
//	Deep(p1, m1, s1) ++ Deep(p2, m2, s2) = Deep(p1, m1 ++ nodes(s1 ++ p2) ++ m2, s2)
//
// The "orphaned" inner digits s1 and p2 are regrouped into 2-3 nodes, which
// are then inserted between the two middle trees. Concatenating the middle
// trees works the same way one level deeper, now with the extra nodes placed
// between the inner digits. At the top level 2 to 8 elements have to be
// regrouped (for every combination of digit lengths 1..4 x 1..4); deeper
// levels add at most 4 extra nodes, which bounds the count at 12.

// nodeArities tells how to pack n elements, 2 <= n <= 12, into nodes.
// Node3s are preferred, keeping the middle tree as shallow as possible; Node2s
// are used only to avoid a remainder of one element.
var nodeArities = [...][]int{
	2:  {2},
	3:  {3},
	4:  {2, 2},
	5:  {3, 2},
	6:  {3, 3},
	7:  {3, 2, 2},
	8:  {3, 3, 2},
	9:  {3, 3, 3},
	10: {3, 3, 2, 2},
	11: {3, 3, 3, 2},
	12: {3, 3, 3, 3},
}

const maxRegroup = 12

// concat joins two deep trees of the same factory.
func concat[V, A any](left, right *Deep[V, A]) FingerTree[V, A] {
	f := left.f
	nodes := f.regroup(left.suffix, nil, right.prefix)
	middle := app3(f.nodes, left.middle, nodes, right.middle)
	tracer().Debugf("concat: regrouped %d+%d inner elements into %d nodes",
		left.suffix.Len(), right.prefix.Len(), len(nodes))
	v := f.measured.Add(left.measure, right.measure)
	return f.deepWithMeasure(v, left.prefix, middle, right.suffix)
}

// app3 concatenates t1, the elements ts and t2, in this order.
func app3[V, E any](f *Factory[V, E], t1 FingerTree[V, E], ts []E, t2 FingerTree[V, E]) FingerTree[V, E] {
	switch l := t1.(type) {
	case *Empty[V, E]:
		return consAll(ts, t2)
	case *Single[V, E]:
		return consAll(ts, t2).Cons(l.value)
	}
	switch r := t2.(type) {
	case *Empty[V, E]:
		return snocAll(t1, ts)
	case *Single[V, E]:
		return snocAll(t1, ts).Snoc(r.value)
	}
	l, r := t1.(*Deep[V, E]), t2.(*Deep[V, E])
	nodes := f.regroup(l.suffix, ts, r.prefix)
	middle := app3(f.nodes, l.middle, nodes, r.middle)
	return f.deep(l.prefix, middle, r.suffix)
}

// regroup packs the elements of s, ts and p (in this order) into 1 to 4
// nodes of the next level.
func (f *Factory[V, E]) regroup(s Digit[V, E], ts []E, p Digit[V, E]) []Node[V, any] {
	var buf [maxRegroup]E
	xs := buf[:0]
	sx, sn := digitElems(s)
	xs = append(xs, sx[:sn]...)
	xs = append(xs, ts...)
	px, pn := digitElems(p)
	xs = append(xs, px[:pn]...)
	n := len(xs)
	assert(n >= 2 && n <= maxRegroup, "regroup: element count out of range")
	arities := nodeArities[n]
	nodes := make([]Node[V, any], 0, len(arities))
	for _, k := range arities {
		if k == 3 {
			nodes = append(nodes, f.node3(xs[0], xs[1], xs[2]))
		} else {
			nodes = append(nodes, f.node2(xs[0], xs[1]))
		}
		xs = xs[k:]
	}
	return nodes
}

func consAll[V, E any](ts []E, t FingerTree[V, E]) FingerTree[V, E] {
	for i := len(ts) - 1; i >= 0; i-- {
		t = t.Cons(ts[i])
	}
	return t
}

func snocAll[V, E any](t FingerTree[V, E], ts []E) FingerTree[V, E] {
	for _, x := range ts {
		t = t.Snoc(x)
	}
	return t
}

// Concat concatenates t and others, from left to right.
func Concat[V, A any](t FingerTree[V, A], others ...FingerTree[V, A]) FingerTree[V, A] {
	for _, other := range others {
		t = t.Append(other)
	}
	return t
}
