package measure

import (
	"cmp"
	"strings"
	"sync"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/uax/grapheme"
)

// TextSummary summarizes a text fragment.
type TextSummary struct {
	Bytes     uint64
	Graphemes uint64 // user-perceived characters
	Lines     uint64 // newline count
}

// TextMonoid aggregates TextSummary values.
//
// Grapheme counts are added fragment by fragment. A grapheme cluster split
// across two fragments is counted twice; keep clusters within a fragment.
type TextMonoid struct{}

// Zero returns the neutral summary.
func (TextMonoid) Zero() TextSummary {
	return TextSummary{}
}

// Add combines two summaries.
func (TextMonoid) Add(left, right TextSummary) TextSummary {
	return TextSummary{
		Bytes:     left.Bytes + right.Bytes,
		Graphemes: left.Graphemes + right.Graphemes,
		Lines:     left.Lines + right.Lines,
	}
}

var setupGraphemes sync.Once

type textMeasure struct {
	TextMonoid
}

func (textMeasure) Measure(s string) TextSummary {
	return Summarize(s)
}

// Text measures string fragments by bytes, graphemes and lines. A tree of
// fragments measured this way is a simple rope.
func Text() fingertree.Measured[TextSummary, string] {
	return textMeasure{}
}

// Summarize returns the summary of s.
func Summarize(s string) TextSummary {
	setupGraphemes.Do(func() {
		tracer().Debugf("setting up grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
	sum := TextSummary{
		Bytes: uint64(len(s)),
		Lines: uint64(strings.Count(s, "\n")),
	}
	if len(s) > 0 {
		sum.Graphemes = uint64(grapheme.StringFromString(s).Len())
	}
	return sum
}

// TextDimension seeks/accumulates one field of TextSummary.
type TextDimension struct {
	field func(TextSummary) uint64
}

var (
	// ByteDimension seeks by byte count.
	ByteDimension = TextDimension{field: func(s TextSummary) uint64 { return s.Bytes }}
	// GraphemeDimension seeks by grapheme count.
	GraphemeDimension = TextDimension{field: func(s TextSummary) uint64 { return s.Graphemes }}
	// LineDimension seeks by newline count.
	LineDimension = TextDimension{field: func(s TextSummary) uint64 { return s.Lines }}
)

func (TextDimension) Zero() uint64 { return 0 }

func (d TextDimension) Add(acc uint64, summary TextSummary) uint64 {
	return acc + d.field(summary)
}

func (TextDimension) Compare(acc uint64, target uint64) int {
	return cmp.Compare(acc, target)
}

// FragmentAt returns the fragment holding byte offset pos of a text tree,
// together with the offset of pos within it.
func FragmentAt(t fingertree.FingerTree[TextSummary, string], pos uint64) (string, uint64, error) {
	_, frag, _, before, err := fingertree.Seek[TextSummary, string, uint64](t, ByteDimension, pos+1)
	if err != nil {
		return "", 0, err
	}
	return frag, pos - before, nil
}

// LineStart returns the fragment in which line n (0-based) of a text tree
// begins, and the byte offset of the line start within it. Line 0 starts at
// the beginning of the text. Empty fragments are skipped. A last line which
// is empty starts at the end of the fragment holding the final newline.
func LineStart(t fingertree.FingerTree[TextSummary, string], n uint64) (string, uint64, error) {
	if n == 0 {
		return FragmentAt(t, 0)
	}
	_, frag, right, before, err := fingertree.Seek[TextSummary, string, uint64](t, LineDimension, n)
	if err != nil {
		return "", 0, err
	}
	// the n-th newline lies within frag
	off, seen := 0, before
	for seen < n {
		i := strings.IndexByte(frag[off:], '\n')
		off += i + 1
		seen++
	}
	if off == len(frag) && right.Measure().Bytes > 0 {
		return FragmentAt(right, 0)
	}
	return frag, uint64(off), nil
}
