package measure

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type job struct {
	name string
	prio int
}

func TestExtractMaxOrdersByPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	f := fingertree.MustFactory(Priority(func(j job) int { return j.prio }))
	r := rand.New(rand.NewSource(11))
	var q fingertree.FingerTree[int, job] = f.Empty()
	var prios []int
	for i := 0; i < 200; i++ {
		p := r.Intn(50)
		prios = append(prios, p)
		q = q.Snoc(job{name: "j", prio: p})
	}
	slices.Sort(prios)
	slices.Reverse(prios)
	for i, want := range prios {
		j, rest, ok := ExtractMax(q)
		if !ok {
			t.Fatalf("queue exhausted after %d extractions", i)
		}
		if j.prio != want {
			t.Fatalf("extraction %d: expected priority %d, got %d", i, want, j.prio)
		}
		q = rest
	}
	if _, _, ok := ExtractMax(q); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestExtractMaxIsStable(t *testing.T) {
	f := fingertree.MustFactory(Priority(func(j job) int { return j.prio }))
	q := f.FromValues(job{"a", 1}, job{"b", 5}, job{"c", 5}, job{"d", 2})
	j, q, _ := ExtractMax(q)
	if j.name != "b" {
		t.Fatalf("expected leftmost maximum b, got %s", j.name)
	}
	j, _, _ = ExtractMax(q)
	if j.name != "c" {
		t.Fatalf("expected c, got %s", j.name)
	}
}
