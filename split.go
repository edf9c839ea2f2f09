package fingertree

import "fmt"

// SplitTree descends into the part of t where pred starts to hold: the
// prefix, a node of the middle tree or the suffix. Untouched parts are
// shared with the result.
func (t *Deep[V, A]) SplitTree(pred func(V) bool, acc V) (FingerTree[V, A], A, FingerTree[V, A]) {
	f, m := t.f, t.f.measured
	vpr := m.Add(acc, t.prefix.Measure())
	if pred(vpr) {
		l, x, r := t.prefix.Split1(m, pred, acc)
		return f.digitTree(l), x, f.deepL(r, t.middle, t.suffix)
	}
	vm := m.Add(vpr, t.middle.Measure())
	if pred(vm) {
		ml, node, mr := t.middle.SplitTree(pred, vpr)
		l, x, r := node.Split1(f.elems, pred, m.Add(vpr, ml.Measure()))
		return f.deepR(t.prefix, ml, f.castDigit(l)), f.cast(x), f.deepL(f.castDigit(r), mr, t.suffix)
	}
	l, x, r := t.suffix.Split1(m, pred, vm)
	return f.deepR(t.prefix, t.middle, l), x, f.digitTree(r)
}

func (t *Deep[V, A]) Split(pred func(V) bool) (FingerTree[V, A], FingerTree[V, A]) {
	return split[V, A](t, pred)
}

// split implements Split for non-empty trees.
func split[V, A any](t FingerTree[V, A], pred func(V) bool) (FingerTree[V, A], FingerTree[V, A]) {
	f := t.Factory()
	if !pred(t.Measure()) {
		return t, f.empty
	}
	l, x, r := t.SplitTree(pred, f.measured.Zero())
	return l, r.Cons(x)
}

// Lookup descends by comparing integer offsets of the prefix, the middle
// tree and the suffix, then delegates to the node or digit holding i.
func (t *Deep[V, A]) Lookup(offset func(V) int, i int) (int, A) {
	f, m := t.f, t.f.measured
	opr := offset(t.prefix.Measure())
	if i < opr {
		return t.prefix.Lookup(m, offset, i)
	}
	i -= opr
	om := offset(t.middle.Measure())
	if i < om {
		j, node := t.middle.Lookup(offset, i)
		k, x := node.Lookup(f.elems, offset, j)
		return k, f.cast(x)
	}
	return t.suffix.Lookup(m, offset, i-om)
}

// Dimension describes a seek dimension over measures.
//
// K is the dimension key/position type. Add must be compatible with the
// tree's monoid: accumulating the sum of two measures must equal
// accumulating both measures one after the other.
type Dimension[V any, K any] interface {
	Zero() K
	Add(acc K, measure V) K
	Compare(acc K, target K) int
}

// Seek splits t at the first element where the dimension, accumulated over
// the measures of all elements up to and including it, reaches target.
//
// It returns the elements before, the element itself, the elements after, and
// the accumulated dimension value before the element. Seeking past the end of
// t returns ErrNotFound.
func Seek[V, A, K any](t FingerTree[V, A], dim Dimension[V, K], target K) (left FingerTree[V, A], x A, right FingerTree[V, A], acc K, err error) {
	if t == nil {
		return nil, x, nil, acc, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, x, nil, acc, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	if t.IsEmpty() {
		return nil, x, nil, acc, fmt.Errorf("%w: seek", ErrEmptyTree)
	}
	reached := func(v V) bool {
		return dim.Compare(dim.Add(dim.Zero(), v), target) >= 0
	}
	if !reached(t.Measure()) {
		return nil, x, nil, acc, ErrNotFound
	}
	left, x, right = t.SplitTree(reached, t.Factory().measured.Zero())
	return left, x, right, dim.Add(dim.Zero(), left.Measure()), nil
}

// TakeUntil returns the longest prefix of t for which pred does not hold on
// the accumulated measure.
func TakeUntil[V, A any](t FingerTree[V, A], pred func(V) bool) FingerTree[V, A] {
	l, _ := t.Split(pred)
	return l
}

// DropUntil drops the longest prefix of t for which pred does not hold on
// the accumulated measure.
func DropUntil[V, A any](t FingerTree[V, A], pred func(V) bool) FingerTree[V, A] {
	_, r := t.Split(pred)
	return r
}
