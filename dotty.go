package fingertree

import (
	"fmt"
	"io"
	"strings"
)

type dotWriter[V any] struct {
	nodes strings.Builder
	edges strings.Builder
	max   int
}

func (d *dotWriter[V]) alloc() int {
	d.max++
	return d.max
}

func (d *dotWriter[V]) node(id int, label string, styles string) {
	fmt.Fprintf(&d.nodes, "\"%d\" [label=%q%s];\n", id, label, styles)
}

func (d *dotWriter[V]) edge(from, to int, label string) {
	if label == "" {
		fmt.Fprintf(&d.edges, "\"%d\" -> \"%d\";\n", from, to)
		return
	}
	fmt.Fprintf(&d.edges, "\"%d\" -> \"%d\" [label=%q];\n", from, to, label)
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Spine trees are drawn as circles, digits as rounded boxes and 2-3 nodes as
// diamonds; elements are boxes labelled with their %v formatting.
func ToDot[V, A any](t FingerTree[V, A], w io.Writer) error {
	d := &dotWriter[V]{}
	dotTree(d, t, 0)
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(d.nodes.String())
	write(d.edges.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("fingertree DOT: %s", err.Error())
	}
	return err
}

func dotTree[V, E any](d *dotWriter[V], t FingerTree[V, E], depth int) int {
	id := d.alloc()
	switch t := t.(type) {
	case *Empty[V, E]:
		d.node(id, "Empty", dotStyles(shapeSpine))
	case *Single[V, E]:
		d.node(id, fmt.Sprintf("Single\n%v", t.measure), dotStyles(shapeSpine))
		d.edge(id, dotElement(d, any(t.value), depth), "")
	case *Deep[V, E]:
		d.node(id, fmt.Sprintf("Deep\n%v", t.measure), dotStyles(shapeSpine))
		d.edge(id, dotDigit(d, t.prefix, depth), "prefix")
		d.edge(id, dotTree(d, t.middle, depth+1), "middle")
		d.edge(id, dotDigit(d, t.suffix, depth), "suffix")
	}
	return id
}

func dotDigit[V, E any](d *dotWriter[V], digit Digit[V, E], depth int) int {
	id := d.alloc()
	d.node(id, fmt.Sprintf("%s\n%v", digitName(digit.Len()), digit.Measure()), dotStyles(shapeDigit))
	xs, n := digitElems(digit)
	for _, x := range xs[:n] {
		d.edge(id, dotElement(d, any(x), depth), "")
	}
	return id
}

func dotElement[V any](d *dotWriter[V], x any, depth int) int {
	id := d.alloc()
	if depth == 0 {
		d.node(id, fmt.Sprintf("%v", x), dotStyles(shapeElement))
		return id
	}
	n := x.(Node[V, any])
	d.node(id, fmt.Sprintf("Node%d\n%v", n.Arity(), n.Measure()), dotStyles(shapeNode))
	eachNode(n, func(child any) bool {
		d.edge(id, dotElement(d, child, depth-1), "")
		return true
	})
	return id
}

type dotShape int

const (
	shapeSpine dotShape = iota
	shapeDigit
	shapeNode
	shapeElement
)

func dotStyles(shape dotShape) string {
	switch shape {
	case shapeSpine:
		return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"
	case shapeDigit:
		return ",style=\"rounded,filled\",fillcolor=\"#CCDDFF\",shape=box"
	case shapeNode:
		return ",style=filled,fillcolor=\"#FFDDCC\",shape=diamond"
	}
	return ",style=filled,fillcolor=white,shape=box"
}

func digitName(n int) string {
	return [...]string{"", "One", "Two", "Three", "Four"}[n]
}
