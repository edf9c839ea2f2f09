package measure

import (
	"testing"

	"github.com/npillmayer/fingertree"
)

func TestExtentOfUnorderedValues(t *testing.T) {
	f := fingertree.MustFactory(Extent(func(s string) int { return len(s) }))
	tree := f.FromValues("ccc", "a", "eeeee", "bb", "dddd", "a", "ffffff", "bb")
	span := tree.Measure()
	if !span.Valid || span.Min != 1 || span.Max != 6 {
		t.Fatalf("unexpected span %+v", span)
	}
	if f.Empty().Measure().Valid {
		t.Fatalf("empty tree must have an empty span")
	}
	l, _ := tree.Split(func(s Span[int]) bool { return s.Valid && s.Max >= 5 })
	if l.Len() != 2 {
		t.Fatalf("expected 2 elements before the first of length 5, got %d", l.Len())
	}
}
