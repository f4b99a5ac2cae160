package largest

import (
	"container/heap"
	"sort"
)

// entry pairs a candidate with its discovery order so that equal sizes
// sort deterministically within one walk.
type entry struct {
	FileStat
	seq int64
}

// minHeap orders entries smallest size first, so the root is always
// the eviction candidate.
type minHeap []entry

func (h minHeap) Len() int { return len(h) }

func (h minHeap) Less(i, j int) bool {
	if h[i].Size != h[j].Size {
		return h[i].Size < h[j].Size
	}

	return h[i].seq < h[j].seq
}

func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Selector maintains the largest files seen so far. With a bounded
// capacity it holds at most capacity entries in a size-keyed min-heap,
// so memory stays proportional to the capacity rather than the number
// of files offered. A Selector must not be shared across concurrent
// walks.
type Selector struct {
	capacity int
	entries  minHeap
	seq      int64
}

// NewSelector creates a selector keeping the capacity largest files.
// A capacity of Unbounded retains every file offered.
func NewSelector(capacity int) *Selector {
	s := &Selector{capacity: capacity}
	if capacity > 0 {
		s.entries = make(minHeap, 0, capacity)
	}

	return s
}

// Offer puts a candidate under consideration. When the selector is
// full, the candidate replaces the smallest retained file only if it
// is strictly larger; otherwise it is discarded.
func (s *Selector) Offer(f FileStat) {
	e := entry{FileStat: f, seq: s.seq}
	s.seq++

	if s.capacity == Unbounded {
		s.entries = append(s.entries, e)

		return
	}

	if s.capacity <= 0 {
		return
	}

	if len(s.entries) < s.capacity {
		heap.Push(&s.entries, e)

		return
	}

	if e.Size > s.entries[0].Size {
		s.entries[0] = e
		heap.Fix(&s.entries, 0)
	}
}

// Len reports the number of retained files.
func (s *Selector) Len() int { return len(s.entries) }

// Results returns the retained files sorted by size descending, equal
// sizes in discovery order. The selector remains usable afterwards.
func (s *Selector) Results() []FileStat {
	sorted := make([]entry, len(s.entries))
	copy(sorted, s.entries)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Size != sorted[j].Size {
			return sorted[i].Size > sorted[j].Size
		}

		return sorted[i].seq < sorted[j].seq
	})

	files := make([]FileStat, len(sorted))
	for i, e := range sorted {
		files[i] = e.FileStat
	}

	return files
}
