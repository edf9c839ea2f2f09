package measure

import (
	"cmp"

	"github.com/npillmayer/fingertree"
)

// Key is an optional key. The zero value is "no key".
type Key[K cmp.Ordered] struct {
	Key   K
	Valid bool
}

// LastKeyMonoid keeps the rightmost valid key.
type LastKeyMonoid[K cmp.Ordered] struct{}

// Zero returns the invalid key.
func (LastKeyMonoid[K]) Zero() Key[K] { return Key[K]{} }

// Add returns right if it is valid, left otherwise.
func (LastKeyMonoid[K]) Add(left, right Key[K]) Key[K] {
	if right.Valid {
		return right
	}
	return left
}

type keyed[A any, K cmp.Ordered] struct {
	LastKeyMonoid[K]
	key func(A) K
}

func (k keyed[A, K]) Measure(a A) Key[K] {
	return Key[K]{Key: k.key(a), Valid: true}
}

// LastKey measures elements by key. For a tree kept in ascending key order
// the measure is the largest key, and KeyAtLeast finds insertion points.
func LastKey[A any, K cmp.Ordered](key func(A) K) fingertree.Measured[Key[K], A] {
	return keyed[A, K]{key: key}
}

// KeyAtLeast holds for accumulated keys of k and above.
func KeyAtLeast[K cmp.Ordered](k K) func(Key[K]) bool {
	return func(v Key[K]) bool { return v.Valid && cmp.Compare(v.Key, k) >= 0 }
}

// KeyAbove holds for accumulated keys above k.
func KeyAbove[K cmp.Ordered](k K) func(Key[K]) bool {
	return func(v Key[K]) bool { return v.Valid && cmp.Compare(v.Key, k) > 0 }
}

// InsertOrdered inserts a into a tree kept in ascending key order, after
// all elements with an equal key.
func InsertOrdered[A any, K cmp.Ordered](t fingertree.FingerTree[Key[K], A], key func(A) K, a A) fingertree.FingerTree[Key[K], A] {
	l, r := t.Split(KeyAbove(key(a)))
	return l.Snoc(a).Append(r)
}

// Partition splits a tree kept in ascending key order into the elements
// with keys below k and the rest.
func Partition[A any, K cmp.Ordered](t fingertree.FingerTree[Key[K], A], k K) (fingertree.FingerTree[Key[K], A], fingertree.FingerTree[Key[K], A]) {
	return t.Split(KeyAtLeast(k))
}
