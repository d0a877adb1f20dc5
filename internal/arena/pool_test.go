package arena

import (
	"testing"
	"unsafe"
)

type payload struct {
	n int
	s string
}

func TestPoolPointersStableAcrossBlocks(t *testing.T) {
	t.Parallel()
	pool := NewPool[payload](4)
	var handles []*payload
	for i := 0; i < 33; i++ {
		item := pool.New()
		item.n = i
		handles = append(handles, item)
	}
	if pool.Len() != 33 {
		t.Fatalf("expected 33 items, got %d", pool.Len())
	}
	for i, handle := range handles {
		if handle.n != i {
			t.Fatalf("handle %d no longer points at its item, got %d", i, handle.n)
		}
	}
}

func TestPoolForEachVisitsInAllocationOrder(t *testing.T) {
	t.Parallel()
	pool := NewPool[payload](3)
	for i := 0; i < 7; i++ {
		pool.New().n = i
	}
	var seen []int
	pool.ForEach(func(item *payload) bool {
		seen = append(seen, item.n)
		return true
	})
	if len(seen) != 7 {
		t.Fatalf("expected 7 visits, got %d", len(seen))
	}
	for i, n := range seen {
		if n != i {
			t.Fatalf("expected item %d at position %d, got %d", i, i, n)
		}
	}
}

func TestPoolNewNExcludedFromIteration(t *testing.T) {
	t.Parallel()
	pool := NewPool[payload](4)
	pool.New().n = 1
	run := pool.NewN(10)
	if len(run) != 10 {
		t.Fatalf("expected contiguous run of 10, got %d", len(run))
	}
	pool.New().n = 2
	visits := 0
	pool.ForEach(func(*payload) bool {
		visits++
		return true
	})
	if visits != 2 {
		t.Fatalf("expected 2 iterable items, got %d", visits)
	}
}

func TestPoolReset(t *testing.T) {
	t.Parallel()
	pool := NewPool[payload](2)
	pool.New()
	pool.New()
	pool.Reset()
	if pool.Len() != 0 {
		t.Fatalf("expected empty pool after reset, got %d", pool.Len())
	}
	item := pool.New()
	if item.n != 0 || item.s != "" {
		t.Fatalf("expected zeroed item after reset, got %+v", item)
	}
}

func TestCharPoolCopiesAcrossChunkBoundary(t *testing.T) {
	t.Parallel()
	var pool CharPool
	big := make([]byte, charChunkSize+17)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	small := pool.Copy("hello")
	huge := pool.Copy(string(big))
	tail := pool.Copy("world")
	if small != "hello" || tail != "world" {
		t.Fatalf("small copies corrupted: %q %q", small, tail)
	}
	if huge != string(big) {
		t.Fatalf("oversized copy corrupted")
	}
	if pool.BytesUsed() != len("hello")+len(big)+len("world") {
		t.Fatalf("unexpected usage %d", pool.BytesUsed())
	}
}

func TestCharPoolEmptyString(t *testing.T) {
	t.Parallel()
	var pool CharPool
	if got := pool.Copy(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if pool.BytesUsed() != 0 {
		t.Fatalf("empty copy must not consume pool space")
	}
}

func TestInternPoolCanonicalCopies(t *testing.T) {
	t.Parallel()
	var pool InternPool
	first := pool.Intern("TAP Air Portugal")
	second := pool.Intern("TAP Air Portugal")
	other := pool.Intern("Ryanair")
	if first != second {
		t.Fatalf("expected equal interned strings")
	}
	if unsafe.StringData(first) != unsafe.StringData(second) {
		t.Fatalf("expected the canonical backing copy for repeated interns")
	}
	if pool.Len() != 2 {
		t.Fatalf("expected 2 distinct strings, got %d", pool.Len())
	}
	if other == first {
		t.Fatalf("distinct inputs must stay distinct")
	}
}

func TestNodePoolPrependOrder(t *testing.T) {
	t.Parallel()
	var pool NodePool
	head := NilNode
	for _, id := range []uint32{1, 2, 3} {
		head = pool.Prepend(head, id)
	}
	var walked []uint32
	pool.Walk(head, func(id uint32) bool {
		walked = append(walked, id)
		return true
	})
	// Prepend-at-head yields reverse insertion order.
	want := []uint32{3, 2, 1}
	for i, id := range want {
		if walked[i] != id {
			t.Fatalf("expected %v, got %v", want, walked)
		}
	}
	if pool.Count(head) != 3 {
		t.Fatalf("expected list length 3, got %d", pool.Count(head))
	}
	if pool.Count(NilNode) != 0 {
		t.Fatalf("empty list must have length 0")
	}
}

func TestNodePoolRemove(t *testing.T) {
	t.Parallel()
	var pool NodePool
	head := NilNode
	for _, id := range []uint32{1, 2, 3} {
		head = pool.Prepend(head, id)
	}

	collect := func(h int32) []uint32 {
		var ids []uint32
		pool.Walk(h, func(id uint32) bool {
			ids = append(ids, id)
			return true
		})
		return ids
	}

	head = pool.Remove(head, 2)
	if got := collect(head); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("expected 3,1 after removing the middle node, got %v", got)
	}
	head = pool.Remove(head, 3)
	if got := collect(head); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected 1 after removing the head, got %v", got)
	}
	// Removing an absent id is a no-op.
	head = pool.Remove(head, 9)
	if pool.Count(head) != 1 {
		t.Fatalf("absent id must not change the list")
	}
	head = pool.Remove(head, 1)
	if head != NilNode {
		t.Fatalf("expected the empty list, got head %d", head)
	}
	if got := pool.Remove(NilNode, 1); got != NilNode {
		t.Fatalf("removing from the empty list must stay empty, got %d", got)
	}
}

func TestNodePoolIndependentLists(t *testing.T) {
	t.Parallel()
	var pool NodePool
	a := pool.Prepend(NilNode, 10)
	b := pool.Prepend(NilNode, 20)
	a = pool.Prepend(a, 11)
	if pool.Count(a) != 2 || pool.Count(b) != 1 {
		t.Fatalf("lists sharing the pool must stay independent: %d %d", pool.Count(a), pool.Count(b))
	}
	if pool.Len() != 3 {
		t.Fatalf("expected 3 nodes allocated, got %d", pool.Len())
	}
}
