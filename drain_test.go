package skewheap

import (
	"cmp"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDrain(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	h := FromSlice(cmp.Compare[int], []int{9, 2, 7, 2, 5})
	d := h.Drain()
	if !h.IsEmpty() || h.Len() != 0 {
		t.Fatalf("expected heap to be empty after Drain")
	}
	if d.Len() != 5 {
		t.Errorf("expected drain to own 5 items, has %d", d.Len())
	}
	var got []int
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}
	if want := []int{2, 2, 5, 7, 9}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if _, ok := d.Next(); ok || d.Len() != 0 {
		t.Errorf("expected exhausted drain to stay exhausted")
	}
}

func TestDrainIsIndependentOfHeap(t *testing.T) {
	h := FromSlice(cmp.Compare[int], []int{3, 1})
	d := h.Drain()
	h.Push(0)
	if x, _ := d.Next(); x != 1 {
		t.Errorf("expected drain to yield 1, got %d", x)
	}
	if h.Len() != 1 {
		t.Errorf("expected heap to hold only the newly pushed item")
	}
}

func TestDrainSeqBreak(t *testing.T) {
	d := FromSlice(cmp.Compare[int], []int{4, 3, 2, 1}).Drain()
	for x := range d.Seq() {
		if x == 2 {
			break
		}
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 items left in drain, have %d", d.Len())
	}
	if rest := slices.Collect(d.Seq()); !slices.Equal(rest, []int{3, 4}) {
		t.Errorf("expected rest [3 4], got %v", rest)
	}
}

func TestSortedWithDuplicates(t *testing.T) {
	h := FromSeq(cmp.Compare[string], slices.Values([]string{"pear", "apple", "fig", "apple"}))
	got := slices.Collect(h.Sorted())
	if want := []string{"apple", "apple", "fig", "pear"}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if h.Len() != 0 {
		t.Errorf("expected Sorted to leave heap empty")
	}
}

func TestIntoUnordered(t *testing.T) {
	items := []int{8, 6, 7, 5, 3, 0, 9}
	h := FromSlice(cmp.Compare[int], items)
	seq := h.IntoUnordered()
	if !h.IsEmpty() {
		t.Fatalf("expected heap to be empty after IntoUnordered")
	}
	got := slices.Sorted(seq)
	want := slices.Sorted(slices.Values(items))
	if !slices.Equal(got, want) {
		t.Errorf("expected multiset %v, got %v", want, got)
	}
}

func TestAllIsNonConsuming(t *testing.T) {
	h := FromSlice(cmp.Compare[int], []int{2, 3, 1})
	got := slices.Sorted(h.All())
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected items [1 2 3], got %v", got)
	}
	if h.Len() != 3 {
		t.Errorf("expected All to leave heap untouched")
	}
	for x := range h.All() {
		if x != 1 {
			t.Errorf("expected root 1 to be visited first, got %d", x)
		}
		break
	}
}

func TestWalkPositions(t *testing.T) {
	h := NewOrdered[int]()
	h.Push(1)
	h.Push(2) // 2 becomes left child of 1
	h.Push(3) // children swap: 3 left, 2 right
	type visit struct {
		item, depth int
		pos         Position
	}
	var visits []visit
	h.Walk(func(item, depth int, pos Position) bool {
		visits = append(visits, visit{item, depth, pos})
		return true
	})
	want := []visit{{1, 0, AtRoot}, {3, 1, LeftChild}, {2, 1, RightChild}}
	if !slices.Equal(visits, want) {
		t.Errorf("expected walk %v, got %v", want, visits)
	}
	if RightChild.String() != "right" || AtRoot.String() != "root" {
		t.Errorf("unexpected position names")
	}
}
