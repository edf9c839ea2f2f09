package fingertree

import "iter"

// FingerTree is a persistent sequence of elements of type A, annotated with
// measures of type V.
//
// The variants are *Empty, *Single and *Deep. All operations leave the
// receiver unchanged and return new trees which share structure with it.
type FingerTree[V, A any] interface {
	// Factory returns the factory the tree is bound to.
	Factory() *Factory[V, A]
	// IsEmpty reports whether the tree has no elements.
	IsEmpty() bool
	// Measure returns the cached monoid sum of all elements, O(1).
	Measure() V
	// Len counts the elements of the tree. This is O(n); use a counting
	// measure for O(1) sizes.
	Len() int

	// Cons prepends an element, amortized O(1).
	Cons(a A) FingerTree[V, A]
	// Snoc appends an element, amortized O(1).
	Snoc(a A) FingerTree[V, A]
	// Append concatenates two trees, O(log(min(n, m))).
	Append(other FingerTree[V, A]) FingerTree[V, A]

	// Head returns the first element. Panics on an empty tree.
	Head() A
	// Last returns the last element. Panics on an empty tree.
	Last() A
	// Tail drops the first element. Panics on an empty tree.
	Tail() FingerTree[V, A]
	// Init drops the last element. Panics on an empty tree.
	Init() FingerTree[V, A]
	// ViewLeft returns head and tail, or false for an empty tree.
	ViewLeft() (A, FingerTree[V, A], bool)
	// ViewRight returns init and last, or false for an empty tree.
	ViewRight() (FingerTree[V, A], A, bool)

	// ReduceLeft folds the elements left to right, starting with the first
	// element. Panics on an empty tree.
	ReduceLeft(f func(A, A) A) A
	// ReduceRight folds the elements right to left, starting with the last
	// element. Panics on an empty tree.
	ReduceRight(f func(A, A) A) A

	// Lookup locates the element containing integer position i, where offset
	// maps measures to integer extents (a counting measure maps each element
	// to extent 1). It returns the residual position within the element and
	// the element. Panics on an empty tree.
	Lookup(offset func(V) int, i int) (int, A)
	// SplitTree splits a non-empty tree at the first element x for which
	// pred(acc + measure(prefix up to and including x)) holds. If pred never
	// holds, x is the last element. Panics on an empty tree.
	SplitTree(pred func(V) bool, acc V) (left FingerTree[V, A], x A, right FingerTree[V, A])
	// Split splits the tree in two, such that the right part starts with the
	// first element where pred holds on the accumulated measure. If pred does
	// not hold for the whole tree, right is empty.
	Split(pred func(V) bool) (left, right FingerTree[V, A])

	// ForEach calls fn for each element in order until fn returns false.
	ForEach(fn func(A) bool)
	// All iterates over the elements from first to last.
	All() iter.Seq[A]
	// Backward iterates over the elements from last to first.
	Backward() iter.Seq[A]

	sealedTree()
}

// Empty is the tree without elements.
type Empty[V, A any] struct {
	f *Factory[V, A]
}

// Single is a tree of exactly one element.
type Single[V, A any] struct {
	f       *Factory[V, A]
	measure V
	value   A
}

// Deep is a tree of two or more elements: a prefix digit, a middle tree of
// 2-3 nodes and a suffix digit.
type Deep[V, A any] struct {
	f       *Factory[V, A]
	measure V
	prefix  Digit[V, A]
	middle  FingerTree[V, Node[V, any]]
	suffix  Digit[V, A]
}

func (t *Empty[V, A]) sealedTree()  {}
func (t *Single[V, A]) sealedTree() {}
func (t *Deep[V, A]) sealedTree()   {}

// --- Empty -----------------------------------------------------------------

func (t *Empty[V, A]) Factory() *Factory[V, A] { return t.f }
func (t *Empty[V, A]) IsEmpty() bool           { return true }
func (t *Empty[V, A]) Measure() V              { return t.f.measured.Zero() }
func (t *Empty[V, A]) Len() int                { return 0 }

func (t *Empty[V, A]) Cons(a A) FingerTree[V, A] { return t.f.Single(a) }
func (t *Empty[V, A]) Snoc(a A) FingerTree[V, A] { return t.f.Single(a) }

func (t *Empty[V, A]) Append(other FingerTree[V, A]) FingerTree[V, A] {
	t.f.mustOwn(other, "Append")
	return other
}

func (t *Empty[V, A]) Head() A {
	panic(emptyTreeError("Head"))
}

func (t *Empty[V, A]) Last() A {
	panic(emptyTreeError("Last"))
}

func (t *Empty[V, A]) Tail() FingerTree[V, A] {
	panic(emptyTreeError("Tail"))
}

func (t *Empty[V, A]) Init() FingerTree[V, A] {
	panic(emptyTreeError("Init"))
}

func (t *Empty[V, A]) ViewLeft() (A, FingerTree[V, A], bool) {
	var zero A
	return zero, t, false
}

func (t *Empty[V, A]) ViewRight() (FingerTree[V, A], A, bool) {
	var zero A
	return t, zero, false
}

func (t *Empty[V, A]) ReduceLeft(func(A, A) A) A {
	panic(emptyTreeError("ReduceLeft"))
}

func (t *Empty[V, A]) ReduceRight(func(A, A) A) A {
	panic(emptyTreeError("ReduceRight"))
}

func (t *Empty[V, A]) Lookup(func(V) int, int) (int, A) {
	panic(emptyTreeError("Lookup"))
}

func (t *Empty[V, A]) SplitTree(func(V) bool, V) (FingerTree[V, A], A, FingerTree[V, A]) {
	panic(emptyTreeError("SplitTree"))
}

func (t *Empty[V, A]) Split(func(V) bool) (FingerTree[V, A], FingerTree[V, A]) {
	return t, t
}

func (t *Empty[V, A]) ForEach(func(A) bool) {}
func (t *Empty[V, A]) All() iter.Seq[A]      { return func(func(A) bool) {} }
func (t *Empty[V, A]) Backward() iter.Seq[A] { return func(func(A) bool) {} }

// --- Single ----------------------------------------------------------------

func (t *Single[V, A]) Factory() *Factory[V, A] { return t.f }
func (t *Single[V, A]) IsEmpty() bool           { return false }
func (t *Single[V, A]) Measure() V              { return t.measure }
func (t *Single[V, A]) Len() int                { return 1 }

// Value returns the single element of t.
func (t *Single[V, A]) Value() A { return t.value }

func (t *Single[V, A]) Cons(a A) FingerTree[V, A] {
	m := t.f.measured
	return t.f.deep(one(m, a), t.f.nodes.empty, &One[V, A]{measure: t.measure, a: t.value})
}

func (t *Single[V, A]) Snoc(a A) FingerTree[V, A] {
	m := t.f.measured
	return t.f.deep(&One[V, A]{measure: t.measure, a: t.value}, t.f.nodes.empty, one(m, a))
}

func (t *Single[V, A]) Append(other FingerTree[V, A]) FingerTree[V, A] {
	t.f.mustOwn(other, "Append")
	return other.Cons(t.value)
}

func (t *Single[V, A]) Head() A                { return t.value }
func (t *Single[V, A]) Last() A                { return t.value }
func (t *Single[V, A]) Tail() FingerTree[V, A] { return t.f.empty }
func (t *Single[V, A]) Init() FingerTree[V, A] { return t.f.empty }

func (t *Single[V, A]) ViewLeft() (A, FingerTree[V, A], bool) {
	return t.value, t.f.empty, true
}

func (t *Single[V, A]) ViewRight() (FingerTree[V, A], A, bool) {
	return t.f.empty, t.value, true
}

func (t *Single[V, A]) ReduceLeft(func(A, A) A) A  { return t.value }
func (t *Single[V, A]) ReduceRight(func(A, A) A) A { return t.value }

func (t *Single[V, A]) Lookup(_ func(V) int, i int) (int, A) {
	return i, t.value
}

func (t *Single[V, A]) SplitTree(func(V) bool, V) (FingerTree[V, A], A, FingerTree[V, A]) {
	return t.f.empty, t.value, t.f.empty
}

func (t *Single[V, A]) Split(pred func(V) bool) (FingerTree[V, A], FingerTree[V, A]) {
	return split[V, A](t, pred)
}

func (t *Single[V, A]) ForEach(fn func(A) bool) {
	if fn != nil {
		fn(t.value)
	}
}

func (t *Single[V, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) { yield(t.value) }
}

func (t *Single[V, A]) Backward() iter.Seq[A] {
	return t.All()
}
