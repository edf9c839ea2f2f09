/*
Package measure provides ready-made measures for finger trees.

A finger tree is specialized by the monoid it caches in its nodes. This
package collects the usual ones:

  - Count: element count, for random-access sequences,
  - Priority: maximum priority, for priority queues,
  - LastKey: rightmost key, for ordered sequences,
  - Extent: minimum and maximum of ordered values,
  - Both: the product of two measures,
  - Text: byte, grapheme and line counts of text fragments.

Predicates and dimensions for splitting and seeking accompany the measures.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fingertree'
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
