package fingertree

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DumpPalette colors the parts of a tree outline.
type DumpPalette struct {
	Spine   *color.Color
	Digit   *color.Color
	Measure *color.Color
}

// DefaultPalette is used by Dump.
var DefaultPalette = DumpPalette{
	Spine:   color.New(color.FgBlue, color.Bold),
	Digit:   color.New(color.FgCyan),
	Measure: color.New(color.FgHiBlack),
}

// Dump writes an indented outline of the internal structure of t to w, for
// debugging. Nodes of the middle spine are rendered as parenthesized groups:
//
//	Deep ‹5›
//	  prefix Two ‹2›: a b
//	  middle Empty ‹0›
//	  suffix Three ‹3›: c d e
//
// Colors follow color.NoColor. If w is a terminal, lines are clipped to the
// terminal width.
func Dump[V, A any](t FingerTree[V, A], w io.Writer) error {
	d := &dumper[V]{pal: DefaultPalette, width: terminalWidth(w)}
	dumpTree(d, t, "", "", 0)
	_, err := io.WriteString(w, d.out.String())
	return err
}

type dumper[V any] struct {
	out   strings.Builder
	pal   DumpPalette
	width int // 0 = unlimited
}

// span is a piece of an outline line, colored with c if c is non-nil.
type span struct {
	text string
	c    *color.Color
}

// line writes indent and spans as one line. Clipping to the terminal width
// works on the plain text, colors are applied afterwards.
func (d *dumper[V]) line(indent string, spans ...span) {
	room, clipped := 0, false
	if d.width > 0 {
		n := utf8.RuneCountInString(indent)
		for _, sp := range spans {
			n += utf8.RuneCountInString(sp.text)
		}
		if n > d.width {
			room, clipped = max(d.width-1-utf8.RuneCountInString(indent), 0), true
		}
	}
	d.out.WriteString(indent)
	for _, sp := range spans {
		text := sp.text
		if clipped {
			if r := []rune(text); len(r) > room {
				text = string(r[:room])
			}
			room -= utf8.RuneCountInString(text)
		}
		if text == "" {
			continue
		}
		if sp.c != nil {
			text = sp.c.Sprint(text)
		}
		d.out.WriteString(text)
	}
	if clipped {
		d.out.WriteString("…")
	}
	d.out.WriteByte('\n')
}

func (d *dumper[V]) measure(v V) span {
	return span{text: fmt.Sprintf("‹%v›", v), c: d.pal.Measure}
}

func plain(s string) span { return span{text: s} }

func dumpTree[V, E any](d *dumper[V], t FingerTree[V, E], indent, label string, depth int) {
	switch t := t.(type) {
	case *Empty[V, E]:
		d.line(indent, plain(label), span{"Empty", d.pal.Spine}, plain(" "), d.measure(t.Measure()))
	case *Single[V, E]:
		d.line(indent, plain(label), span{"Single", d.pal.Spine}, plain(" "), d.measure(t.measure),
			plain(": "+d.element(any(t.value), depth)))
	case *Deep[V, E]:
		d.line(indent, plain(label), span{"Deep", d.pal.Spine}, plain(" "), d.measure(t.measure))
		inner := indent + "  "
		dumpDigit(d, t.prefix, inner, "prefix ", depth)
		dumpTree(d, t.middle, inner, "middle ", depth+1)
		dumpDigit(d, t.suffix, inner, "suffix ", depth)
	}
}

func dumpDigit[V, E any](d *dumper[V], digit Digit[V, E], indent, label string, depth int) {
	xs, n := digitElems(digit)
	elems := make([]string, n)
	for i, x := range xs[:n] {
		elems[i] = d.element(any(x), depth)
	}
	d.line(indent, plain(label), span{digitName(n), d.pal.Digit}, plain(" "), d.measure(digit.Measure()),
		plain(": "+strings.Join(elems, " ")))
}

func (d *dumper[V]) element(x any, depth int) string {
	if depth == 0 {
		return fmt.Sprintf("%v", x)
	}
	n := x.(Node[V, any])
	var parts []string
	eachNode(n, func(child any) bool {
		parts = append(parts, d.element(child, depth-1))
		return true
	})
	return "(" + strings.Join(parts, " ") + ")"
}

// terminalWidth returns the width of the terminal w is connected to, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		tracer().Debugf("fingertree dump: cannot get terminal size: %v", err)
		return 0
	}
	return width
}
