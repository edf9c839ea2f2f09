package fingertree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewFactoryRejectsInvalidMeasure(t *testing.T) {
	if _, err := NewFactory[int, int](nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil measure, got %v", err)
	}
	if _, err := NewFactory(NewMeasured[int, int](nil, func(int) int { return 1 })); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil monoid, got %v", err)
	}
	if _, err := NewFactory(NewMeasured[int, int](sumMonoid{}, nil)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil measure function, got %v", err)
	}
}

func TestSnocOneToTen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	f := counted(t)
	tree := f.Empty()
	for i := 1; i <= 10; i++ {
		tree = tree.Snoc(i)
	}
	if tree.Measure() != 10 {
		t.Fatalf("expected measure 10, got %d", tree.Measure())
	}
	assertElems(t, tree, seq(1, 10))
	assertValid(t, tree)
	//
	tree = tree.Cons(0)
	assertElems(t, tree, seq(0, 10))
	if tree.Measure() != 11 || tree.Len() != 11 {
		t.Fatalf("expected 11 elements, got measure=%d len=%d", tree.Measure(), tree.Len())
	}
}

func TestTailUntilEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	f := counted(t)
	tree := f.FromSlice(seq(0, 10))
	for i := 0; i < 11; i++ {
		if tree.IsEmpty() {
			t.Fatalf("tree empty after %d tails", i)
		}
		if tree.Head() != i {
			t.Fatalf("expected head %d, got %d", i, tree.Head())
		}
		tree = tree.Tail()
		assertValid(t, tree)
	}
	if !tree.IsEmpty() || tree.Measure() != 0 {
		t.Fatalf("expected empty tree after 11 tails")
	}
	expectEmptyTreePanic(t, "Tail", func() { tree.Tail() })
}

func TestEmptyTreePreconditions(t *testing.T) {
	tree := counted(t).Empty()
	expectEmptyTreePanic(t, "Head", func() { tree.Head() })
	expectEmptyTreePanic(t, "Last", func() { tree.Last() })
	expectEmptyTreePanic(t, "Tail", func() { tree.Tail() })
	expectEmptyTreePanic(t, "Init", func() { tree.Init() })
	expectEmptyTreePanic(t, "ReduceLeft", func() { tree.ReduceLeft(func(a, b int) int { return a + b }) })
	expectEmptyTreePanic(t, "ReduceRight", func() { tree.ReduceRight(func(a, b int) int { return a + b }) })
	expectEmptyTreePanic(t, "Lookup", func() { tree.Lookup(identity, 0) })
	expectEmptyTreePanic(t, "SplitTree", func() { tree.SplitTree(byIndex(0), 0) })
	if _, _, ok := tree.ViewLeft(); ok {
		t.Fatalf("expected ViewLeft to report an empty tree")
	}
	if _, _, ok := tree.ViewRight(); ok {
		t.Fatalf("expected ViewRight to report an empty tree")
	}
}

func TestInitUntilEmpty(t *testing.T) {
	f := counted(t)
	tree := f.FromSlice(seq(1, 30))
	for i := 30; i > 0; i-- {
		l, x, ok := tree.ViewRight()
		if !ok || x != i {
			t.Fatalf("expected last %d, got %d (ok=%v)", i, x, ok)
		}
		if tree.Last() != i {
			t.Fatalf("Last: expected %d, got %d", i, tree.Last())
		}
		tree = l
		assertValid(t, tree)
		assertElems(t, tree, seq(1, i-1))
	}
}

func TestConsHeadTailRoundTrip(t *testing.T) {
	f := counted(t)
	for n := 0; n < 40; n++ {
		tree := f.FromSlice(seq(1, n))
		grown := tree.Cons(-1)
		if grown.Head() != -1 {
			t.Fatalf("n=%d: expected head -1, got %d", n, grown.Head())
		}
		back := grown.Tail()
		if back.Measure() != tree.Measure() {
			t.Fatalf("n=%d: measure changed by cons/tail", n)
		}
		assertElems(t, back, seq(1, n))
		x, rest, ok := grown.ViewLeft()
		if !ok || x != -1 {
			t.Fatalf("n=%d: unexpected ViewLeft", n)
		}
		assertElems(t, rest, seq(1, n))
	}
}

func TestPersistence(t *testing.T) {
	f := counted(t)
	tree := f.FromSlice(seq(1, 25))
	before := ToSlice(tree)
	_ = tree.Cons(0)
	_ = tree.Snoc(26)
	_ = tree.Tail()
	_ = tree.Init()
	_ = tree.Append(tree)
	_, _ = tree.Split(byIndex(12))
	if tree.Measure() != 25 {
		t.Fatalf("original tree measure changed to %d", tree.Measure())
	}
	if !slices.Equal(ToSlice(tree), before) {
		t.Fatalf("original tree elements changed")
	}
	assertValid(t, tree)
}

func TestIterators(t *testing.T) {
	f := counted(t)
	for _, n := range []int{0, 1, 2, 9, 50} {
		tree := f.FromSlice(seq(1, n))
		want := seq(1, n)
		got := slices.Collect(tree.All())
		if !slices.Equal(got, want) {
			t.Fatalf("All: expected %v, got %v", want, got)
		}
		got = slices.Collect(tree.Backward())
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Fatalf("Backward: expected %v, got %v", want, got)
		}
	}
	tree := f.FromSlice(seq(1, 50))
	var seen []int
	for x := range tree.All() {
		if x > 3 {
			break
		}
		seen = append(seen, x)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Fatalf("early break: got %v", seen)
	}
	count := 0
	tree.ForEach(func(int) bool {
		count++
		return count < 10
	})
	if count != 10 {
		t.Fatalf("ForEach did not stop: %d", count)
	}
}

func TestSingleAccessors(t *testing.T) {
	f := counted(t)
	tree := f.Single(7)
	s, ok := tree.(*Single[int, int])
	if !ok {
		t.Fatalf("expected *Single, got %T", tree)
	}
	if s.Value() != 7 || tree.Head() != 7 || tree.Last() != 7 || tree.Len() != 1 {
		t.Fatalf("unexpected single tree state")
	}
	if !tree.Tail().IsEmpty() || !tree.Init().IsEmpty() {
		t.Fatalf("expected empty remainder")
	}
	if tree.Factory() != f || f.Empty().Factory() != f {
		t.Fatalf("trees must be bound to their factory")
	}
}

func TestDeepAccessors(t *testing.T) {
	f := counted(t)
	tree := f.FromSlice(seq(1, 12))
	d, ok := tree.(*Deep[int, int])
	if !ok {
		t.Fatalf("expected *Deep, got %T", tree)
	}
	if d.Prefix().Head() != 1 || d.Suffix().Last() != 12 {
		t.Fatalf("unexpected digits")
	}
	if d.Prefix().Measure()+d.Middle().Measure()+d.Suffix().Measure() != 12 {
		t.Fatalf("parts must add up to the tree measure")
	}
	if d.Middle().Factory() != f.Nodes() {
		t.Fatalf("middle tree must be bound to the node factory")
	}
	first := d.Middle().Head()
	n3, ok := first.(*Node3[int, any])
	if !ok {
		t.Fatalf("expected first middle node to be a Node3, got %T", first)
	}
	a, b, c := n3.Values()
	if a != 2 || b != 3 || c != 4 {
		t.Fatalf("unexpected first node (%v %v %v)", a, b, c)
	}
}
