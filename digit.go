package fingertree

// Digit is a buffer of one to four elements, forming the prefix or suffix
// ("finger") of a deep tree.
//
// The variants are *One, *Two, *Three and *Four; an empty digit does not
// exist. Digits cache their measure at construction time.
type Digit[V, E any] interface {
	// Measure returns the cached monoid sum of the digit's elements.
	Measure() V
	// Len returns the number of elements, 1 to 4.
	Len() int
	// Head returns the leftmost element.
	Head() E
	// Last returns the rightmost element.
	Last() E
	// Tail drops the leftmost element. It reports false for a One, which has
	// no remainder.
	Tail(m Measured[V, E]) (Digit[V, E], bool)
	// Init drops the rightmost element. It reports false for a One.
	Init(m Measured[V, E]) (Digit[V, E], bool)
	// ToTree embeds the digit as a tree. A One becomes a Single, other digits
	// become a Deep tree with an empty middle.
	ToTree(f *Factory[V, E]) FingerTree[V, E]
	// Split1 works like Node.Split1 for 1 to 4 elements.
	Split1(m Measured[V, E], pred func(V) bool, acc V) (left Digit[V, E], x E, right Digit[V, E])
	// Lookup works like Node.Lookup for 1 to 4 elements.
	Lookup(m Measured[V, E], offset func(V) int, i int) (int, E)
	sealedDigit()
}

// One is a digit of one element.
type One[V, E any] struct {
	measure V
	a       E
}

// Two is a digit of two elements.
type Two[V, E any] struct {
	measure V
	a, b    E
}

// Three is a digit of three elements.
type Three[V, E any] struct {
	measure V
	a, b, c E
}

// Four is a digit of four elements.
type Four[V, E any] struct {
	measure    V
	a, b, c, d E
}

func (d *One[V, E]) sealedDigit()   {}
func (d *Two[V, E]) sealedDigit()   {}
func (d *Three[V, E]) sealedDigit() {}
func (d *Four[V, E]) sealedDigit()  {}

func (d *One[V, E]) Measure() V   { return d.measure }
func (d *Two[V, E]) Measure() V   { return d.measure }
func (d *Three[V, E]) Measure() V { return d.measure }
func (d *Four[V, E]) Measure() V  { return d.measure }

func (d *One[V, E]) Len() int   { return 1 }
func (d *Two[V, E]) Len() int   { return 2 }
func (d *Three[V, E]) Len() int { return 3 }
func (d *Four[V, E]) Len() int  { return 4 }

func (d *One[V, E]) Head() E   { return d.a }
func (d *Two[V, E]) Head() E   { return d.a }
func (d *Three[V, E]) Head() E { return d.a }
func (d *Four[V, E]) Head() E  { return d.a }

func (d *One[V, E]) Last() E   { return d.a }
func (d *Two[V, E]) Last() E   { return d.b }
func (d *Three[V, E]) Last() E { return d.c }
func (d *Four[V, E]) Last() E  { return d.d }

// Values returns the element of d.
func (d *One[V, E]) Values() E { return d.a }

// Values returns the elements of d.
func (d *Two[V, E]) Values() (E, E) { return d.a, d.b }

// Values returns the elements of d.
func (d *Three[V, E]) Values() (E, E, E) { return d.a, d.b, d.c }

// Values returns the elements of d.
func (d *Four[V, E]) Values() (E, E, E, E) { return d.a, d.b, d.c, d.d }

func (d *One[V, E]) Tail(Measured[V, E]) (Digit[V, E], bool) { return nil, false }
func (d *Two[V, E]) Tail(m Measured[V, E]) (Digit[V, E], bool) {
	return one(m, d.b), true
}
func (d *Three[V, E]) Tail(m Measured[V, E]) (Digit[V, E], bool) {
	return two(m, d.b, d.c), true
}
func (d *Four[V, E]) Tail(m Measured[V, E]) (Digit[V, E], bool) {
	return three(m, d.b, d.c, d.d), true
}

func (d *One[V, E]) Init(Measured[V, E]) (Digit[V, E], bool) { return nil, false }
func (d *Two[V, E]) Init(m Measured[V, E]) (Digit[V, E], bool) {
	return one(m, d.a), true
}
func (d *Three[V, E]) Init(m Measured[V, E]) (Digit[V, E], bool) {
	return two(m, d.a, d.b), true
}
func (d *Four[V, E]) Init(m Measured[V, E]) (Digit[V, E], bool) {
	return three(m, d.a, d.b, d.c), true
}

func (d *One[V, E]) ToTree(f *Factory[V, E]) FingerTree[V, E] {
	return &Single[V, E]{f: f, measure: d.measure, value: d.a}
}

func (d *Two[V, E]) ToTree(f *Factory[V, E]) FingerTree[V, E] {
	m := f.measured
	return f.deepWithMeasure(d.measure, one(m, d.a), f.nodes.empty, one(m, d.b))
}

func (d *Three[V, E]) ToTree(f *Factory[V, E]) FingerTree[V, E] {
	m := f.measured
	return f.deepWithMeasure(d.measure, two(m, d.a, d.b), f.nodes.empty, one(m, d.c))
}

func (d *Four[V, E]) ToTree(f *Factory[V, E]) FingerTree[V, E] {
	m := f.measured
	return f.deepWithMeasure(d.measure, two(m, d.a, d.b), f.nodes.empty, two(m, d.c, d.d))
}

func (d *One[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	return nil, d.a, nil
}

func (d *Two[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	return splitElems(m, pred, acc, d.a, d.b)
}

func (d *Three[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	return splitElems(m, pred, acc, d.a, d.b, d.c)
}

func (d *Four[V, E]) Split1(m Measured[V, E], pred func(V) bool, acc V) (Digit[V, E], E, Digit[V, E]) {
	return splitElems(m, pred, acc, d.a, d.b, d.c, d.d)
}

func (d *One[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	return i, d.a
}

func (d *Two[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	return lookupElems(m, offset, i, d.a, d.b)
}

func (d *Three[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	return lookupElems(m, offset, i, d.a, d.b, d.c)
}

func (d *Four[V, E]) Lookup(m Measured[V, E], offset func(V) int, i int) (int, E) {
	return lookupElems(m, offset, i, d.a, d.b, d.c, d.d)
}

// splitElems finds the first of xs where pred holds on the accumulated
// measure and builds the digits of the elements on either side.
func splitElems[V, E any](m Measured[V, E], pred func(V) bool, acc V, xs ...E) (Digit[V, E], E, Digit[V, E]) {
	assert(len(xs) > 0, "splitElems called without elements")
	last := len(xs) - 1
	at := last
	for i := 0; i < last; i++ {
		acc = m.Add(acc, m.Measure(xs[i]))
		if pred(acc) {
			at = i
			break
		}
	}
	return digitOf(m, xs[:at]), xs[at], digitOf(m, xs[at+1:])
}

func lookupElems[V, E any](m Measured[V, E], offset func(V) int, i int, xs ...E) (int, E) {
	last := len(xs) - 1
	for _, x := range xs[:last] {
		o := offset(m.Measure(x))
		if i < o {
			return i, x
		}
		i -= o
	}
	return i, xs[last]
}

// --- Construction ----------------------------------------------------------

func one[V, E any](m Measured[V, E], a E) *One[V, E] {
	return &One[V, E]{measure: m.Measure(a), a: a}
}

func two[V, E any](m Measured[V, E], a, b E) *Two[V, E] {
	return &Two[V, E]{measure: m.Add(m.Measure(a), m.Measure(b)), a: a, b: b}
}

func three[V, E any](m Measured[V, E], a, b, c E) *Three[V, E] {
	return &Three[V, E]{
		measure: add3[V](m, m.Measure(a), m.Measure(b), m.Measure(c)),
		a:       a, b: b, c: c,
	}
}

func four[V, E any](m Measured[V, E], a, b, c, d E) *Four[V, E] {
	return &Four[V, E]{
		measure: add4[V](m, m.Measure(a), m.Measure(b), m.Measure(c), m.Measure(d)),
		a:       a, b: b, c: c, d: d,
	}
}

// digitOf builds a digit from 0 to 4 elements. It returns nil for no elements.
func digitOf[V, E any](m Measured[V, E], xs []E) Digit[V, E] {
	switch len(xs) {
	case 0:
		return nil
	case 1:
		return one(m, xs[0])
	case 2:
		return two(m, xs[0], xs[1])
	case 3:
		return three(m, xs[0], xs[1], xs[2])
	case 4:
		return four(m, xs[0], xs[1], xs[2], xs[3])
	}
	panic("digit must hold 1 to 4 elements")
}

// digitElems copies the elements of d into a fixed array.
func digitElems[V, E any](d Digit[V, E]) (xs [4]E, n int) {
	switch d := d.(type) {
	case *One[V, E]:
		xs[0] = d.a
		return xs, 1
	case *Two[V, E]:
		xs[0], xs[1] = d.a, d.b
		return xs, 2
	case *Three[V, E]:
		xs[0], xs[1], xs[2] = d.a, d.b, d.c
		return xs, 3
	case *Four[V, E]:
		xs[0], xs[1], xs[2], xs[3] = d.a, d.b, d.c, d.d
		return xs, 4
	}
	panic("unknown digit variant")
}

// consDigit prepends a to a digit with room for one more element.
func consDigit[V, E any](m Measured[V, E], a E, d Digit[V, E]) Digit[V, E] {
	switch d := d.(type) {
	case *One[V, E]:
		return &Two[V, E]{measure: m.Add(m.Measure(a), d.measure), a: a, b: d.a}
	case *Two[V, E]:
		return &Three[V, E]{measure: m.Add(m.Measure(a), d.measure), a: a, b: d.a, c: d.b}
	case *Three[V, E]:
		return &Four[V, E]{measure: m.Add(m.Measure(a), d.measure), a: a, b: d.a, c: d.b, d: d.c}
	}
	panic("consDigit: digit is full")
}

// snocDigit appends a to a digit with room for one more element.
func snocDigit[V, E any](m Measured[V, E], d Digit[V, E], a E) Digit[V, E] {
	switch d := d.(type) {
	case *One[V, E]:
		return &Two[V, E]{measure: m.Add(d.measure, m.Measure(a)), a: d.a, b: a}
	case *Two[V, E]:
		return &Three[V, E]{measure: m.Add(d.measure, m.Measure(a)), a: d.a, b: d.b, c: a}
	case *Three[V, E]:
		return &Four[V, E]{measure: m.Add(d.measure, m.Measure(a)), a: d.a, b: d.b, c: d.c, d: a}
	}
	panic("snocDigit: digit is full")
}

// --- Traversal -------------------------------------------------------------

// FoldLeftDigit folds the elements of d from left to right.
func FoldLeftDigit[V, E, B any](d Digit[V, E], f func(B, E) B, z B) B {
	xs, n := digitElems(d)
	for _, x := range xs[:n] {
		z = f(z, x)
	}
	return z
}

// FoldRightDigit folds the elements of d from right to left.
func FoldRightDigit[V, E, B any](d Digit[V, E], f func(E, B) B, z B) B {
	xs, n := digitElems(d)
	for i := n - 1; i >= 0; i-- {
		z = f(xs[i], z)
	}
	return z
}

// MapDigit applies f to every element of d and measures the results with m.
func MapDigit[V, E, W, F any](d Digit[V, E], f func(E) F, m Measured[W, F]) Digit[W, F] {
	xs, n := digitElems(d)
	var ys [4]F
	for i := range n {
		ys[i] = f(xs[i])
	}
	return digitOf(m, ys[:n])
}

func eachDigit[V, E any](d Digit[V, E], fn func(E) bool) bool {
	xs, n := digitElems(d)
	for _, x := range xs[:n] {
		if !fn(x) {
			return false
		}
	}
	return true
}

func eachDigitReverse[V, E any](d Digit[V, E], fn func(E) bool) bool {
	xs, n := digitElems(d)
	for i := n - 1; i >= 0; i-- {
		if !fn(xs[i]) {
			return false
		}
	}
	return true
}
