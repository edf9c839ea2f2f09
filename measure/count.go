package measure

import "github.com/npillmayer/fingertree"

// CountMonoid adds element counts.
type CountMonoid struct{}

// Zero returns 0.
func (CountMonoid) Zero() int { return 0 }

// Add adds two counts.
func (CountMonoid) Add(left, right int) int { return left + right }

type counting[A any] struct {
	CountMonoid
}

func (counting[A]) Measure(A) int { return 1 }

// Count measures every element as 1. A tree's measure is its length, and
// splitting at IndexPredicate(i) yields random access.
func Count[A any]() fingertree.Measured[int, A] {
	return counting[A]{}
}

// IndexPredicate holds for every accumulated count which includes the
// element at index i.
func IndexPredicate(i int) func(int) bool {
	return func(n int) bool { return n > i }
}

// Offset maps a count to an integer extent, for use with Lookup.
func Offset(n int) int { return n }

// At returns the element at index i of a counted tree.
func At[A any](t fingertree.FingerTree[int, A], i int) (A, error) {
	var zero A
	if i < 0 || i >= t.Measure() {
		return zero, fingertree.ErrIndexOutOfBounds
	}
	_, x := t.Lookup(Offset, i)
	return x, nil
}

// SplitAt splits a counted tree into the first i elements and the rest.
func SplitAt[A any](t fingertree.FingerTree[int, A], i int) (fingertree.FingerTree[int, A], fingertree.FingerTree[int, A], error) {
	if i < 0 || i > t.Measure() {
		return nil, nil, fingertree.ErrIndexOutOfBounds
	}
	l, r := t.Split(IndexPredicate(i))
	return l, r, nil
}
