package fingertree

import "fmt"

// Factory creates trees, digits and nodes bound to one Measured.
//
// All values created by a factory carry correct cached measures. A factory
// holds the measure, a factory for the node level of the middle spine and
// one shared Empty instance. It is immutable after construction and safe for
// concurrent use.
type Factory[V, A any] struct {
	measured Measured[V, A]
	elems    Measured[V, any] // measure for node children of the next level
	nodes    *Factory[V, Node[V, any]]
	empty    *Empty[V, A]
}

// NewFactory creates a factory for trees annotated by m.
func NewFactory[V, A any](m Measured[V, A]) (*Factory[V, A], error) {
	if err := validateMeasured(m); err != nil {
		return nil, err
	}
	nf := &Factory[V, Node[V, any]]{
		measured: NodeMeasured[V, any](m),
	}
	nf.init(nf)
	f := &Factory[V, A]{measured: m}
	f.init(nf)
	return f, nil
}

// MustFactory is like NewFactory, but panics on an invalid measure.
func MustFactory[V, A any](m Measured[V, A]) *Factory[V, A] {
	f, err := NewFactory(m)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Factory[V, A]) init(nodes *Factory[V, Node[V, any]]) {
	f.elems = erasedMeasured[V, A]{Monoid: f.measured, m: f.measured}
	f.nodes = nodes
	f.empty = &Empty[V, A]{f: f}
}

// Measured returns the measure this factory is bound to.
func (f *Factory[V, A]) Measured() Measured[V, A] {
	return f.measured
}

// Nodes returns the factory of the middle spine, whose elements are nodes.
func (f *Factory[V, A]) Nodes() *Factory[V, Node[V, any]] {
	return f.nodes
}

// Empty returns the empty tree.
func (f *Factory[V, A]) Empty() FingerTree[V, A] {
	return f.empty
}

// Single returns a tree holding one element.
func (f *Factory[V, A]) Single(a A) FingerTree[V, A] {
	return &Single[V, A]{f: f, measure: f.measured.Measure(a), value: a}
}

// Deep returns a deep tree from its parts. The middle tree must have been
// created by f.Nodes().
func (f *Factory[V, A]) Deep(prefix Digit[V, A], middle FingerTree[V, Node[V, any]], suffix Digit[V, A]) FingerTree[V, A] {
	assert(prefix != nil && suffix != nil, "Deep requires prefix and suffix digits")
	assert(middle != nil, "Deep requires a middle tree")
	if middle.Factory() != f.nodes {
		panic(foreignTreeError("Deep"))
	}
	return f.deep(prefix, middle, suffix)
}

// FromSlice creates a tree holding xs in order.
func (f *Factory[V, A]) FromSlice(xs []A) FingerTree[V, A] {
	var t FingerTree[V, A] = f.empty
	for _, x := range xs {
		t = t.Snoc(x)
	}
	return t
}

// FromValues creates a tree holding xs in order.
func (f *Factory[V, A]) FromValues(xs ...A) FingerTree[V, A] {
	return f.FromSlice(xs)
}

func (f *Factory[V, A]) One(a A) Digit[V, A] {
	return one(f.measured, a)
}

func (f *Factory[V, A]) Two(a, b A) Digit[V, A] {
	return two(f.measured, a, b)
}

func (f *Factory[V, A]) Three(a, b, c A) Digit[V, A] {
	return three(f.measured, a, b, c)
}

func (f *Factory[V, A]) Four(a, b, c, d A) Digit[V, A] {
	return four(f.measured, a, b, c, d)
}

// Node2 creates a node of two elements, suitable for f.Nodes() trees.
func (f *Factory[V, A]) Node2(a, b A) Node[V, any] {
	m := f.measured
	return &Node2[V, any]{measure: m.Add(m.Measure(a), m.Measure(b)), a: a, b: b}
}

// Node3 creates a node of three elements, suitable for f.Nodes() trees.
func (f *Factory[V, A]) Node3(a, b, c A) Node[V, any] {
	m := f.measured
	return &Node3[V, any]{measure: add3[V](m, m.Measure(a), m.Measure(b), m.Measure(c)), a: a, b: b, c: c}
}

// --- Internal helpers ------------------------------------------------------

// mustOwn panics unless t has been created by f. Trees of different factories
// may use different measures and cannot be combined.
func (f *Factory[V, A]) mustOwn(t FingerTree[V, A], op string) {
	if t.Factory() != f {
		panic(foreignTreeError(op))
	}
}

func (f *Factory[V, A]) deep(prefix Digit[V, A], middle FingerTree[V, Node[V, any]], suffix Digit[V, A]) *Deep[V, A] {
	v := add3[V](f.measured, prefix.Measure(), middle.Measure(), suffix.Measure())
	return f.deepWithMeasure(v, prefix, middle, suffix)
}

func (f *Factory[V, A]) deepWithMeasure(v V, prefix Digit[V, A], middle FingerTree[V, Node[V, any]], suffix Digit[V, A]) *Deep[V, A] {
	return &Deep[V, A]{
		f:       f,
		measure: v,
		prefix:  prefix,
		middle:  middle,
		suffix:  suffix,
	}
}

// cast recovers an element from a type-erased node child.
func (f *Factory[V, A]) cast(x any) A {
	a, ok := x.(A)
	if !ok {
		panic(fmt.Sprintf("fingertree: node child of type %T, expected %T", x, a))
	}
	return a
}

// digitFromNode turns a node of the middle spine into a digit of this level.
// The node's cached measure is carried over.
func (f *Factory[V, A]) digitFromNode(n Node[V, any]) Digit[V, A] {
	switch n := n.(type) {
	case *Node2[V, any]:
		return &Two[V, A]{measure: n.measure, a: f.cast(n.a), b: f.cast(n.b)}
	case *Node3[V, any]:
		return &Three[V, A]{measure: n.measure, a: f.cast(n.a), b: f.cast(n.b), c: f.cast(n.c)}
	}
	panic("unknown node variant")
}

// castDigit converts a digit of erased node children into a digit of this
// level, keeping the cached measure. nil stays nil.
func (f *Factory[V, A]) castDigit(d Digit[V, any]) Digit[V, A] {
	switch d := d.(type) {
	case nil:
		return nil
	case *One[V, any]:
		return &One[V, A]{measure: d.measure, a: f.cast(d.a)}
	case *Two[V, any]:
		return &Two[V, A]{measure: d.measure, a: f.cast(d.a), b: f.cast(d.b)}
	case *Three[V, any]:
		return &Three[V, A]{measure: d.measure, a: f.cast(d.a), b: f.cast(d.b), c: f.cast(d.c)}
	case *Four[V, any]:
		return &Four[V, A]{measure: d.measure, a: f.cast(d.a), b: f.cast(d.b), c: f.cast(d.c), d: f.cast(d.d)}
	}
	panic("unknown digit variant")
}

// digitTree embeds an optional digit as a tree.
func (f *Factory[V, A]) digitTree(d Digit[V, A]) FingerTree[V, A] {
	if d == nil {
		return f.empty
	}
	return d.ToTree(f)
}

// deepL builds a deep tree whose prefix may be missing. A missing prefix is
// refilled from the middle, or the suffix becomes the tree.
func (f *Factory[V, A]) deepL(prefix Digit[V, A], middle FingerTree[V, Node[V, any]], suffix Digit[V, A]) FingerTree[V, A] {
	if prefix != nil {
		return f.deep(prefix, middle, suffix)
	}
	if middle.IsEmpty() {
		return suffix.ToTree(f)
	}
	return f.deep(f.digitFromNode(middle.Head()), middle.Tail(), suffix)
}

// deepR is the mirror image of deepL for a missing suffix.
func (f *Factory[V, A]) deepR(prefix Digit[V, A], middle FingerTree[V, Node[V, any]], suffix Digit[V, A]) FingerTree[V, A] {
	if suffix != nil {
		return f.deep(prefix, middle, suffix)
	}
	if middle.IsEmpty() {
		return prefix.ToTree(f)
	}
	return f.deep(prefix, middle.Init(), f.digitFromNode(middle.Last()))
}

// node2 and node3 pack elements of this level into nodes of the next level.
func (f *Factory[V, A]) node2(a, b A) Node[V, any] {
	return f.Node2(a, b)
}

func (f *Factory[V, A]) node3(a, b, c A) Node[V, any] {
	return f.Node3(a, b, c)
}
