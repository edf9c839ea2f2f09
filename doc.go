/*
Package fingertree implements persistent 2-3 finger trees, annotated with a
client-provided monoid.

A finger tree is a sequence with amortized O(1) access to both ends and
O(log n) concatenation and splitting. Every subtree caches a summary value
("measure") computed by a monoid. Plugging in different monoids turns the same
structure into different containers:

  - counting elements gives a random-access sequence,
  - taking the maximum priority gives a priority queue,
  - keeping the last key gives an ordered sequence with search.

Trees are never mutated after construction. Operations return new trees
which share structure with their inputs, so a tree value may be read by any
number of goroutines without synchronization.

# Shape

A tree is Empty, Single (one element) or Deep. A Deep tree holds two digits
of 1 to 4 elements (its "fingers") and a middle tree of 2-3 nodes:

	Deep( prefix:Digit[A], middle:FingerTree[Node], suffix:Digit[A] )

Each level of nesting groups two or three elements of the level above, giving
a spine of logarithmic depth.

Go does not allow generic types to nest without bound, so every middle tree
has element type Node[V, any]. The children of a first-level node are
elements of the tree; the children of deeper nodes are nodes again.

# Usage

	f, err := fingertree.NewFactory(measure.Count[string]())
	...
	t := f.Empty().Snoc("a").Snoc("b").Cons("z")
	left, right := t.Split(measure.IndexPredicate(1))

Precondition violations (Head, Tail etc. on an empty tree) panic with an error
wrapping ErrEmptyTree. Use ViewLeft/ViewRight for a non-panicking alternative.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fingertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
