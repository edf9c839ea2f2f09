package fingertree

import (
	"slices"
	"strconv"
	"testing"
)

func TestFolds(t *testing.T) {
	f := counted(t)
	for _, n := range []int{0, 1, 5, 33} {
		tree := f.FromSlice(seq(1, n))
		got := FoldLeft(tree, func(acc []int, x int) []int { return append(acc, x) }, []int(nil))
		if !slices.Equal(got, seq(1, n)) {
			t.Fatalf("FoldLeft: got %v", got)
		}
		got = FoldRight(tree, func(x int, acc []int) []int { return append(acc, x) }, []int(nil))
		want := seq(1, n)
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Fatalf("FoldRight: got %v", got)
		}
	}
}

func TestReduce(t *testing.T) {
	f := counted(t)
	tree := f.FromSlice(seq(1, 20))
	if sum := tree.ReduceLeft(func(a, b int) int { return a + b }); sum != 210 {
		t.Fatalf("expected sum 210, got %d", sum)
	}
	// subtraction tells the directions apart
	if d := tree.ReduceLeft(func(a, b int) int { return a - b }); d != 1-209 {
		t.Fatalf("unexpected left reduction %d", d)
	}
	// 1-(2-(3-...(19-20)))
	if d := tree.ReduceRight(func(a, b int) int { return a - b }); d != -10 {
		t.Fatalf("unexpected right reduction %d", d)
	}
	if f.Single(4).ReduceRight(func(a, b int) int { return a * b }) != 4 {
		t.Fatalf("reduction of a single element must return it")
	}
}

func TestMapFunctorLaw(t *testing.T) {
	f := counted(t)
	g := MustFactory(NewMeasured[int, string](sumMonoid{}, func(s string) int { return len(s) }))
	for _, n := range []int{0, 1, 4, 12, 100} {
		xs := seq(1, n)
		tree := f.FromSlice(xs)
		mapped := Map(tree, strconv.Itoa, g)
		var want []string
		total := 0
		for _, x := range xs {
			s := strconv.Itoa(x)
			want = append(want, s)
			total += len(s)
		}
		if got := ToSlice(mapped); !slices.Equal(got, want) {
			t.Fatalf("n=%d: expected %v, got %v", n, want, got)
		}
		if mapped.Measure() != total {
			t.Fatalf("n=%d: expected remeasured %d, got %d", n, total, mapped.Measure())
		}
		assertValid(t, mapped)
		if mapped.Factory() != g {
			t.Fatalf("mapped tree must be bound to the target factory")
		}
	}
	// identity law
	tree := f.FromSlice(seq(1, 30))
	assertElems(t, Map(tree, func(x int) int { return x }, f), seq(1, 30))
}
