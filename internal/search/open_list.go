package search

import (
	"container/heap"

	"github.com/search-framework/astar/pkg/astar"
)

// openList is the frontier shared by both solvers: a binary min-heap
// ordered by ascending F, with a key index so each key has at most one
// entry. Ties in F follow heap order; there is no secondary tie-break.
type openList[K comparable, V astar.State[K]] struct {
	heap  entryHeap[K, V]
	index map[K]*entry[K, V]
}

type entry[K comparable, V astar.State[K]] struct {
	key   K
	value V
	pos   int
}

type entryHeap[K comparable, V astar.State[K]] []*entry[K, V]

func (h entryHeap[K, V]) Len() int { return len(h) }
func (h entryHeap[K, V]) Less(i, j int) bool { return h[i].value.F() < h[j].value.F() }

func (h entryHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *entryHeap[K, V]) Push(x any) {
	e := x.(*entry[K, V])
	e.pos = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

func newOpenList[K comparable, V astar.State[K]]() *openList[K, V] {
	return &openList[K, V]{index: make(map[K]*entry[K, V])}
}

func (o *openList[K, V]) Len() int { return len(o.heap) }

// Insert pushes value under key. When key is already on the frontier
// the existing entry is replaced only if value has a strictly lower F.
func (o *openList[K, V]) Insert(key K, value V) {
	if e, ok := o.index[key]; ok {
		if value.F() < e.value.F() {
			e.value = value
			heap.Fix(&o.heap, e.pos)
		}
		return
	}
	e := &entry[K, V]{key: key, value: value}
	heap.Push(&o.heap, e)
	o.index[key] = e
}

// ExtractMin removes and returns the lowest-F entry, or ok=false when
// the frontier is empty.
func (o *openList[K, V]) ExtractMin() (V, bool) {
	if len(o.heap) == 0 {
		var zero V
		return zero, false
	}
	e := heap.Pop(&o.heap).(*entry[K, V])
	delete(o.index, e.key)
	return e.value, true
}
