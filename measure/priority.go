package measure

import (
	"math"

	"github.com/npillmayer/fingertree"
)

// MaxMonoid keeps the maximum of integer priorities. Its neutral element is
// math.MinInt.
type MaxMonoid struct{}

// Zero returns math.MinInt.
func (MaxMonoid) Zero() int { return math.MinInt }

// Add returns the larger priority.
func (MaxMonoid) Add(left, right int) int { return max(left, right) }

type prioritizing[A any] struct {
	MaxMonoid
	prio func(A) int
}

func (p prioritizing[A]) Measure(a A) int { return p.prio(a) }

// Priority measures elements by prio. A tree's measure is the highest
// priority of its elements.
func Priority[A any](prio func(A) int) fingertree.Measured[int, A] {
	return prioritizing[A]{prio: prio}
}

// AtLeast holds for accumulated priorities of p and above.
func AtLeast(p int) func(int) bool {
	return func(v int) bool { return v >= p }
}

// ExtractMax removes the leftmost element of highest priority from t. It
// reports false for an empty tree.
func ExtractMax[A any](t fingertree.FingerTree[int, A]) (A, fingertree.FingerTree[int, A], bool) {
	var zero A
	if t.IsEmpty() {
		return zero, t, false
	}
	l, x, r := t.SplitTree(AtLeast(t.Measure()), MaxMonoid{}.Zero())
	tracer().Debugf("extract max: priority %d", t.Measure())
	return x, l.Append(r), true
}
