package heap

import (
	"errors"
	"math/bits"
	"sort"
)

// ErrEmptyHeap is returned by every peek or pop performed on a heap that
// holds no items.
var ErrEmptyHeap = errors.New("empty heap")

type Interface[VALUE any] interface {
	sort.Interface
	Push(x VALUE)
	Pop() (VALUE, error)
}

type Heap[VALUE any] interface {
	Add(value VALUE)
	Delete(value VALUE) error
	PeekMin() (VALUE, error)
	PeekMax() (VALUE, error)
	PopMin() (VALUE, error)
	PopMax() (VALUE, error)
	Get(value VALUE) (VALUE, bool)
	List() []VALUE
	Len() int
}

// The tree is laid out 0-based: even levels order ascending (a node is <=
// everything in its subtree), odd levels order descending. bits.Len gives
// the level exactly, with no float/log rounding at power-of-two indices.

func level(i int) int {
	// floor(log2(i + 1))
	return bits.Len(uint(i)+1) - 1
}

func onMinLevel(i int) bool {
	return level(i)%2 == 0
}

func lchild(i int) int {
	return 2*i + 1
}

func rchild(i int) int {
	return 2*i + 2
}

func parent(i int) int {
	return (i - 1) / 2
}

func hasParent(i int) bool {
	return i > 0
}

func hasGrandparent(i int) bool {
	return i > 2
}

func grandparent(i int) int {
	return parent(parent(i))
}

// BuildHeap establishes the min-max ordering over arbitrary contents in
// O(n).
func BuildHeap[VALUE any](heap Interface[VALUE]) {

	n := heap.Len()

	for i := n/2 - 1; i >= 0; i-- {
		trickleDown(heap, i, n)
	}

}

func Push[VALUE any](heap Interface[VALUE], x VALUE) {
	heap.Push(x)
	bubbleUp(heap, heap.Len()-1)
}

// PopMin removes and returns the smallest item, which always sits at the
// root.
func PopMin[VALUE any](heap Interface[VALUE]) (VALUE, error) {
	n := heap.Len() - 1

	if n < 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}

	heap.Swap(0, n)
	trickleDown(heap, 0, n)
	return heap.Pop()
}

// PopMax removes and returns the largest item, which sits at the root or
// one of its children.
func PopMax[VALUE any](heap Interface[VALUE]) (VALUE, error) {
	n := heap.Len()

	if n == 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}

	i := MaxIndex(heap)
	heap.Swap(i, n-1)
	trickleDown(heap, i, n-1)
	return heap.Pop()
}

// MaxIndex returns the index holding the largest item, or -1 on an empty
// heap. The largest item is the root while the heap holds a single item,
// otherwise the larger of the root's children.
func MaxIndex[VALUE any](heap Interface[VALUE]) int {
	n := heap.Len()
	if n == 0 {
		return -1
	}

	i := 0
	if l := lchild(0); l < n && heap.Less(i, l) {
		i = l
	}
	if r := rchild(0); r < n && heap.Less(i, r) {
		i = r
	}
	return i
}

func Remove[VALUE any](heap Interface[VALUE], i int) (VALUE, error) {
	n := heap.Len() - 1

	if n < 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}

	if n != i {
		heap.Swap(i, n)
		bubbleUp(heap, trickleDown(heap, i, n))
	}
	return heap.Pop()
}

// Fix restores the ordering after the item at index i changed in place.
// Sinking alone is not enough here: unlike a pop, the disturbed value
// starts at an arbitrary node, and trickling it onto the opposite level
// parity can leave it smaller (or larger) than a same-parity ancestor.
// The climb from the landing index settles that direction.
func Fix[VALUE any](h Interface[VALUE], i int) {
	bubbleUp(h, trickleDown(h, i, h.Len()))
}

func bubbleUp[VALUE any](heap Interface[VALUE], i int) {
	min := onMinLevel(i)

	if hasParent(i) {
		p := parent(i)
		if heap.Less(p, i) == min {
			// Wrong side of the parent's level: cross over, then keep
			// climbing on the opposite parity.
			heap.Swap(i, p)
			min = !min
			i = p
		}
	}

	// Same-parity ancestors sit two levels apart, so the climb compares
	// grandparents only.
	for hasGrandparent(i) {
		g := grandparent(i)
		if heap.Less(i, g) != min {
			return
		}

		heap.Swap(i, g)
		i = g
	}
}

// trickleDown repairs the subtree rooted at i, everything strictly below
// it already ordered. Unlike a plain binary heap the search window spans
// two levels: the winning candidate may be either child or any of the
// four grandchildren. Returns the index where the value that started at
// i came to rest, so callers can climb from there.
func trickleDown[VALUE any](h Interface[VALUE], i0, n int) int {
	i := i0
	land := i0
	sinking := true
	for {
		min := onMinLevel(i)
		m := i

		l := lchild(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		if h.Less(l, m) == min {
			m = l
		}

		r := rchild(i)
		if r < n && h.Less(r, m) == min {
			m = r
		}

		// Grandchildren occupy the contiguous run 4i+3 .. 4i+6.
		for g := lchild(l); g < n && g <= rchild(r); g++ {
			if h.Less(g, m) == min {
				m = g
			}
		}

		if m == i {
			break
		}

		h.Swap(i, m)
		if sinking {
			land = m
		}

		if m != l && m != r {
			// The displaced value skipped over its new parent on the way
			// down; the two may now be out of order across levels.
			if p := parent(m); h.Less(p, m) == min {
				h.Swap(m, p)
				if sinking {
					// The tracked value parked at the intervening parent;
					// the loop carries that parent's old value from here.
					land = p
					sinking = false
				}
			}
		}

		// Continue from the landing spot. Parity is recomputed at the top
		// of the loop, so dropping one level or two are both handled.
		i = m
	}
	return land
}
