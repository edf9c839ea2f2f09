package fingertree

import (
	"math/rand"
	"slices"
	"testing"
)

type op byte

const (
	opCons op = iota
	opSnoc
	opTail
	opInit
	opSplitJoin
	opAppendSelf
	opCount
)

// replay applies ops to a tree and to a plain slice and fails on the first
// divergence.
func replay(t *testing.T, f *Factory[int, int], ops []byte) {
	t.Helper()
	tree := f.Empty()
	var model []int
	next := 0
	for step, b := range ops {
		switch op(b) % opCount {
		case opCons:
			tree = tree.Cons(next)
			model = append([]int{next}, model...)
			next++
		case opSnoc:
			tree = tree.Snoc(next)
			model = append(model, next)
			next++
		case opTail:
			if len(model) == 0 {
				continue
			}
			tree = tree.Tail()
			model = model[1:]
		case opInit:
			if len(model) == 0 {
				continue
			}
			tree = tree.Init()
			model = model[:len(model)-1]
		case opSplitJoin:
			i := int(b) % (len(model) + 1)
			l, r := tree.Split(byIndex(i))
			if l.Measure() != i {
				t.Fatalf("step %d: split at %d gave left size %d", step, i, l.Measure())
			}
			tree = l.Append(r)
		case opAppendSelf:
			if len(model) > 200 {
				continue
			}
			tree = tree.Append(tree)
			model = append(slices.Clone(model), model...)
		}
		if tree.Measure() != len(model) {
			t.Fatalf("step %d: measure %d, expected %d", step, tree.Measure(), len(model))
		}
	}
	if err := Check(tree, nil); err != nil {
		t.Fatalf("invalid tree after %d ops: %v", len(ops), err)
	}
	if got := ToSlice(tree); !slices.Equal(got, model) {
		t.Fatalf("tree diverged from model:\n got %v\nwant %v", got, model)
	}
}

func TestRandomOperationsMatchSlice(t *testing.T) {
	f := counted(t)
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		ops := make([]byte, r.Intn(400))
		for i := range ops {
			ops[i] = byte(r.Intn(256))
		}
		replay(t, f, ops)
	}
}

func FuzzOperations(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5})
	f.Add([]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2})
	f.Add([]byte{5, 0, 5, 1, 5, 4, 10, 16, 22})
	f.Fuzz(func(t *testing.T, ops []byte) {
		replay(t, counted(t), ops)
	})
}
