package measure

import (
	"testing"

	"github.com/npillmayer/fingertree"
)

func TestBothMeasuresCountAndPriority(t *testing.T) {
	m := Both(Count[job](), Priority(func(j job) int { return j.prio }))
	f := fingertree.MustFactory(m)
	tree := f.FromValues(job{"a", 4}, job{"b", 9}, job{"c", 2}, job{"d", 7}, job{"e", 1})
	v := tree.Measure()
	if v.First != 5 || v.Second != 9 {
		t.Fatalf("unexpected pair measure %+v", v)
	}
	// index access on the first component
	l, r := tree.Split(OnFirst[int, int](IndexPredicate(3)))
	if l.Len() != 3 || r.Head().name != "d" {
		t.Fatalf("unexpected split by index: %d, %s", l.Len(), r.Head().name)
	}
	// priority search on the second component
	_, x, _ := tree.SplitTree(OnSecond[int, int](AtLeast(7)), m.Zero())
	if x.name != "b" {
		t.Fatalf("expected b as first job with priority >= 7, got %s", x.name)
	}
	if err := fingertree.Check(tree, nil); err != nil {
		t.Fatal(err)
	}
}
