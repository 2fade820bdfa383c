// Package queue provides a value-based binary heap used for top-k selection.
package queue

// Item represents an entry in the priority queue.
// Value-based (no pointers) for cache locality and zero allocations on push/pop.
type Item struct {
	ID       uint32  // ID of the candidate vector
	Distance float32 // Distance is the priority of the item in the queue
}

// worse reports whether a ranks after b: larger distance first, and on
// equal distance the larger ID. The ID tie-break keeps result orderings
// reproducible across runs regardless of insertion order.
func worse(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.ID > b.ID
}

// Max is a max-heap of Items ordered by (Distance, ID).
// The top element is the worst candidate, which makes it suitable for
// bounded top-k selection: compare new candidates against Top and replace.
type Max struct {
	items []Item
}

// NewMax creates a max-heap with capacity for k items preallocated.
func NewMax(k int) *Max {
	if k < 0 {
		k = 0
	}
	return &Max{items: make([]Item, 0, k)}
}

// Len returns the number of items in the heap.
func (q *Max) Len() int { return len(q.items) }

// Top returns the worst item currently in the heap.
func (q *Max) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (q *Max) Push(item Item) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the worst item while maintaining the heap invariant.
func (q *Max) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

// PushBounded offers item to a heap bounded at k elements.
// If the heap is full and item is better than the current worst, the worst
// is evicted; otherwise the item is discarded.
func (q *Max) PushBounded(item Item, k int) {
	if k <= 0 {
		return
	}
	if len(q.items) < k {
		q.Push(item)
		return
	}
	if worse(q.items[0], item) {
		q.items[0] = item
		q.siftDown(0)
	}
}

// Drain removes all items and returns them sorted best-first
// (ascending distance, ascending ID on ties).
func (q *Max) Drain() []Item {
	out := make([]Item, len(q.items))
	for i := len(q.items) - 1; i >= 0; i-- {
		item, _ := q.Pop()
		out[i] = item
	}
	return out
}

func (q *Max) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !worse(q.items[i], q.items[p]) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Max) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && worse(q.items[r], q.items[l]) {
			best = r
		}
		if !worse(q.items[best], q.items[i]) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
