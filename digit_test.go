package fingertree

import (
	"slices"
	"testing"
)

func digitSlice(d Digit[int, int]) []int {
	if d == nil {
		return nil
	}
	return FoldLeftDigit(d, func(acc []int, x int) []int { return append(acc, x) }, []int(nil))
}

func TestDigitTailInit(t *testing.T) {
	f := summed(t)
	m := f.Measured()
	d := f.Four(1, 2, 3, 4)
	if d.Measure() != 10 || d.Len() != 4 || d.Head() != 1 || d.Last() != 4 {
		t.Fatalf("unexpected digit Four")
	}
	rest, ok := d.Tail(m)
	if !ok || !slices.Equal(digitSlice(rest), []int{2, 3, 4}) || rest.Measure() != 9 {
		t.Fatalf("unexpected tail %v", digitSlice(rest))
	}
	rest, ok = d.Init(m)
	if !ok || !slices.Equal(digitSlice(rest), []int{1, 2, 3}) || rest.Measure() != 6 {
		t.Fatalf("unexpected init %v", digitSlice(rest))
	}
	if _, ok := f.One(1).Tail(m); ok {
		t.Fatalf("tail of One must be absent")
	}
	if _, ok := f.One(1).Init(m); ok {
		t.Fatalf("init of One must be absent")
	}
}

func TestDigitToTree(t *testing.T) {
	f := counted(t)
	for n := 1; n <= 4; n++ {
		d := digitFrom(f, 0, n)
		tree := d.ToTree(f)
		assertElems(t, tree, seq(0, n-1))
		assertValid(t, tree)
		if tree.Measure() != n {
			t.Fatalf("n=%d: unexpected measure %d", n, tree.Measure())
		}
	}
}

func TestDigitSplit(t *testing.T) {
	f := counted(t)
	m := f.Measured()
	for n := 1; n <= 4; n++ {
		d := digitFrom(f, 0, n)
		for i := 0; i < n; i++ {
			l, x, r := d.Split1(m, byIndex(i), 0)
			if x != i || !slices.Equal(digitSlice(l), seq(0, i-1)) || !slices.Equal(digitSlice(r), seq(i+1, n-1)) {
				t.Fatalf("n=%d i=%d: unexpected split %v %d %v", n, i, digitSlice(l), x, digitSlice(r))
			}
		}
	}
}

func TestDigitLookup(t *testing.T) {
	f := counted(t)
	m := f.Measured()
	d := f.Four(10, 11, 12, 13)
	for i := 0; i < 4; i++ {
		rest, x := d.Lookup(m, identity, i)
		if rest != 0 || x != 10+i {
			t.Fatalf("Lookup(%d) = (%d, %d)", i, rest, x)
		}
	}
}

func TestDigitFoldsAndMap(t *testing.T) {
	f := summed(t)
	d := f.Three(1, 2, 3)
	got := FoldRightDigit(d, func(x int, acc []int) []int { return append(acc, x) }, []int(nil))
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("unexpected right fold %v", got)
	}
	g := MustFactory(NewMeasured[int, string](sumMonoid{}, func(s string) int { return len(s) }))
	mapped := MapDigit(d, func(x int) string { return string(rune('a' + x - 1)) + "!" }, g.Measured())
	if mapped.Len() != 3 || mapped.Measure() != 6 || mapped.Head() != "a!" {
		t.Fatalf("unexpected mapped digit")
	}
}
