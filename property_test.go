package skewheap

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedAgainstModel -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzHeapOps -fuzztime=10s

// model is a sorted slice acting as a reference priority queue.
type model []int

func (m *model) push(x int) {
	i, _ := slices.BinarySearch(*m, x)
	*m = slices.Insert(*m, i, x)
}

func (m *model) pop() (int, bool) {
	if len(*m) == 0 {
		return 0, false
	}
	x := (*m)[0]
	*m = (*m)[1:]
	return x, true
}

func (m model) peek() (int, bool) {
	if len(m) == 0 {
		return 0, false
	}
	return m[0], true
}

const (
	opPush = iota
	opPop
	opPushPop
	opReplace
	opExtend
	opAppend
	opCount
)

// applyOp executes op on both h and m and reports disagreements.
func applyOp(t *testing.T, h *Heap[int], m *model, op int, r *rand.Rand) {
	t.Helper()
	switch op {
	case opPush:
		x := r.Intn(100)
		h.Push(x)
		m.push(x)
	case opPop:
		x, ok := h.Pop()
		y, mok := m.pop()
		if x != y || ok != mok {
			t.Fatalf("Pop disagrees: heap=(%d,%v) model=(%d,%v)", x, ok, y, mok)
		}
	case opPushPop:
		x := r.Intn(100)
		got := h.PushPop(x)
		m.push(x)
		want, _ := m.pop()
		if got != want {
			t.Fatalf("PushPop(%d) disagrees: heap=%d model=%d", x, got, want)
		}
	case opReplace:
		x := r.Intn(100)
		got, ok := h.Replace(x)
		want, mok := m.pop()
		m.push(x)
		if got != want || ok != mok {
			t.Fatalf("Replace(%d) disagrees: heap=(%d,%v) model=(%d,%v)", x, got, ok, want, mok)
		}
	case opExtend:
		items := make([]int, r.Intn(8))
		for i := range items {
			items[i] = r.Intn(100)
			m.push(items[i])
		}
		h.Extend(slices.Values(items))
	case opAppend:
		items := make([]int, r.Intn(8))
		for i := range items {
			items[i] = r.Intn(100)
			m.push(items[i])
		}
		other := FromSlice(cmp.Compare[int], items)
		h.Append(other)
		if !other.IsEmpty() {
			t.Fatalf("Append left %d items in source heap", other.Len())
		}
	}
}

func runOps(t *testing.T, r *rand.Rand, steps int) {
	t.Helper()
	h := NewOrdered[int]()
	var m model
	for range steps {
		applyOp(t, h, &m, r.Intn(opCount), r)
		mustCheck(t, h)
		x, ok := h.Peek()
		y, mok := m.peek()
		if x != y || ok != mok {
			t.Fatalf("Peek disagrees: heap=(%d,%v) model=(%d,%v)", x, ok, y, mok)
		}
		if h.Len() != len(m) {
			t.Fatalf("Len disagrees: heap=%d model=%d", h.Len(), len(m))
		}
	}
	if got := slices.Collect(h.Sorted()); !slices.Equal(got, []int(m)) {
		t.Fatalf("drain disagrees:\n heap =%v\n model=%v", got, m)
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for seed := int64(1); seed <= 50; seed++ {
		runOps(t, rand.New(rand.NewSource(seed)), 300)
	}
}

func TestRandomizedMerge(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(7))
	for range 100 {
		a, b := make([]int, r.Intn(30)), make([]int, r.Intn(30))
		for i := range a {
			a[i] = r.Intn(50)
		}
		for i := range b {
			b[i] = r.Intn(50)
		}
		ha := FromSeq(cmp.Compare[int], slices.Values(a))
		hb := FromSlice(cmp.Compare[int], b)
		m := ha.Merge(hb)
		mustCheck(t, m)
		want := slices.Sorted(slices.Values(slices.Concat(a, b)))
		if m.Len() != len(want) {
			t.Fatalf("expected merged Len()=%d, is %d", len(want), m.Len())
		}
		if got := slices.Collect(m.Sorted()); !slices.Equal(got, want) {
			t.Fatalf("merge drained to %v, expected %v", got, want)
		}
	}
}

func FuzzHeapOps(f *testing.F) {
	f.Add(int64(1), uint16(100))
	f.Add(int64(42), uint16(1000))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		gtrace.CoreTracer = gotestingadapter.New(t)
		teardown := gotestingadapter.RedirectTracing(t)
		defer teardown()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
		//
		runOps(t, rand.New(rand.NewSource(seed)), int(steps%2000))
	})
}
