package fingertree

// Node is a 2-3 node of a tree's middle spine.
//
// The variants are *Node2 and *Node3; no other arity is representable. Nodes
// cache their measure at construction time and are immutable.
type Node[V, E any] interface {
	// Measure returns the cached monoid sum of the node's children.
	Measure() V
	// Arity returns 2 or 3.
	Arity() int
	// ToDigit re-expresses the node's children as a digit of the same arity.
	ToDigit() Digit[V, E]
	// Split1 scans the children left to right, accumulating measures onto acc,
	// and returns the first child x for which pred(acc+...+x) holds, together
	// with the children left and right of it. A missing remainder is nil.
	// If pred never holds, the last child is returned.
	Split1(m Measured[V, E], pred func(V) bool, acc V) (left Digit[V, E], x E, right Digit[V, E])
	// Lookup locates the child containing integer offset i, where offset maps
	// measures to integer extents. It returns the offset residual within the
	// child together with the child.
	Lookup(m Measured[V, E], offset func(V) int, i int) (int, E)
	sealedNode()
}

// Node2 is a node with two children.
type Node2[V, E any] struct {
	measure V
	a, b    E
}

// Node3 is a node with three children.
type Node3[V, E any] struct {
	measure V
	a, b, c E
}

func (n *Node2[V, E]) sealedNode() {}
func (n *Node3[V, E]) sealedNode() {}

func (n *Node2[V, E]) Measure() V { return n.measure }
func (n *Node3[V, E]) Measure() V { return n.measure }

func (n *Node2[V, E]) Arity() int { return 2 }
func (n *Node3[V, E]) Arity() int { return 3 }

// Values returns the children of n.
func (n *Node2[V, E]) Values() (E, E) { return n.a, n.b }

// Values returns the children of n.
func (n *Node3[V, E]) Values() (E, E, E) { return n.a, n.b, n.c }

// ToDigit returns a Two with the same children and measure.
func (n *Node2[V, E]) ToDigit() Digit[V, E] {
	return &Two[V, E]{measure: n.measure, a: n.a, b: n.b}
}

// ToDigit returns a Three with the same children and measure.
func (n *Node3[V, E]) ToDigit() Digit[V, E] {
	return &Three[V, E]{measure: n.measure, a: n.a, b: n.b, c: n.c}
}

func (n *Node2[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	if pred(m.Add(acc, m.Measure(n.a))) {
		return nil, n.a, one(m, n.b)
	}
	return one(m, n.a), n.b, nil
}

func (n *Node3[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	va := m.Add(acc, m.Measure(n.a))
	if pred(va) {
		return nil, n.a, two(m, n.b, n.c)
	}
	if pred(m.Add(va, m.Measure(n.b))) {
		return one(m, n.a), n.b, one(m, n.c)
	}
	return two(m, n.a, n.b), n.c, nil
}

func (n *Node2[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	oa := offset(m.Measure(n.a))
	if i < oa {
		return i, n.a
	}
	return i - oa, n.b
}

func (n *Node3[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	oa := offset(m.Measure(n.a))
	if i < oa {
		return i, n.a
	}
	i -= oa
	ob := offset(m.Measure(n.b))
	if i < ob {
		return i, n.b
	}
	return i - ob, n.c
}

// --- Construction ----------------------------------------------------------

func node2[V, E any](m Measured[V, E], a, b E) *Node2[V, E] {
	return &Node2[V, E]{
		measure: m.Add(m.Measure(a), m.Measure(b)),
		a:       a,
		b:       b,
	}
}

func node3[V, E any](m Measured[V, E], a, b, c E) *Node3[V, E] {
	return &Node3[V, E]{
		measure: add3[V](m, m.Measure(a), m.Measure(b), m.Measure(c)),
		a:       a,
		b:       b,
		c:       c,
	}
}

// --- Traversal -------------------------------------------------------------

// FoldLeftNode folds the children of n from left to right.
func FoldLeftNode[V, E, B any](n Node[V, E], f func(B, E) B, z B) B {
	switch n := n.(type) {
	case *Node2[V, E]:
		return f(f(z, n.a), n.b)
	case *Node3[V, E]:
		return f(f(f(z, n.a), n.b), n.c)
	}
	panic("unknown node variant")
}

// FoldRightNode folds the children of n from right to left.
func FoldRightNode[V, E, B any](n Node[V, E], f func(E, B) B, z B) B {
	switch n := n.(type) {
	case *Node2[V, E]:
		return f(n.a, f(n.b, z))
	case *Node3[V, E]:
		return f(n.a, f(n.b, f(n.c, z)))
	}
	panic("unknown node variant")
}

// MapNode applies f to every child of n and measures the results with m.
func MapNode[V, E, W, F any](n Node[V, E], f func(E) F, m Measured[W, F]) Node[W, F] {
	switch n := n.(type) {
	case *Node2[V, E]:
		return node2(m, f(n.a), f(n.b))
	case *Node3[V, E]:
		return node3(m, f(n.a), f(n.b), f(n.c))
	}
	panic("unknown node variant")
}

// eachNode calls fn for the children of n, in order, until fn returns false.
func eachNode[V, E any](n Node[V, E], fn func(E) bool) bool {
	switch n := n.(type) {
	case *Node2[V, E]:
		return fn(n.a) && fn(n.b)
	case *Node3[V, E]:
		return fn(n.a) && fn(n.b) && fn(n.c)
	}
	panic("unknown node variant")
}

// eachNodeReverse calls fn for the children of n, last to first.
func eachNodeReverse[V, E any](n Node[V, E], fn func(E) bool) bool {
	switch n := n.(type) {
	case *Node2[V, E]:
		return fn(n.b) && fn(n.a)
	case *Node3[V, E]:
		return fn(n.c) && fn(n.b) && fn(n.a)
	}
	panic("unknown node variant")
}
