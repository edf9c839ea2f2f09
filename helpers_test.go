package fingertree

import (
	"errors"
	"slices"
	"testing"
)

type sumMonoid struct{}

func (sumMonoid) Zero() int             { return 0 }
func (sumMonoid) Add(left, right int) int { return left + right }

// counted returns a factory for int sequences measured by element count.
func counted(t testing.TB) *Factory[int, int] {
	t.Helper()
	f, err := NewFactory(NewMeasured[int, int](sumMonoid{}, func(int) int { return 1 }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

// summed returns a factory for int sequences measured by element sum.
func summed(t testing.TB) *Factory[int, int] {
	t.Helper()
	f, err := NewFactory(NewMeasured[int, int](sumMonoid{}, func(x int) int { return x }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func seq(lo, hi int) []int {
	var xs []int
	for i := lo; i <= hi; i++ {
		xs = append(xs, i)
	}
	return xs
}

func byIndex(i int) func(int) bool {
	return func(n int) bool { return n > i }
}

func identity(n int) int { return n }

func assertElems[V any](t testing.TB, tree FingerTree[V, int], want []int) {
	t.Helper()
	if got := ToSlice(tree); !slices.Equal(got, want) {
		t.Fatalf("expected elements %v, got %v", want, got)
	}
}

func assertValid[V, A any](t testing.TB, tree FingerTree[V, A]) {
	t.Helper()
	if err := Check(tree, nil); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
}

// expectEmptyTreePanic runs fn and fails unless it panics with ErrEmptyTree.
func expectEmptyTreePanic(t testing.TB, op string, fn func()) {
	t.Helper()
	expectPanic(t, op, ErrEmptyTree, fn)
}

// expectPanic runs fn and fails unless it panics with an error wrapping
// target.
func expectPanic(t testing.TB, op string, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("%s: expected %v, got %v", op, target, r)
		}
	}()
	fn()
}
