package heap

// Comparator supplies the total order a MinMaxHeap arranges its values
// by. Less must be a strict weak ordering; values need not be numeric or
// even comparable with ==.
type Comparator[VALUE any] interface {
	Less(VALUE, VALUE) bool
}

type minmaxData[VALUE any] struct {
	queue   []VALUE
	compare Comparator[VALUE]
}

func (h *minmaxData[_]) Len() int {
	return len(h.queue)
}

func (h *minmaxData[_]) Less(i, j int) bool {
	return h.compare.Less(h.queue[i], h.queue[j])
}

func (h *minmaxData[_]) Swap(i, j int) {
	h.queue[i], h.queue[j] = h.queue[j], h.queue[i]
}

func (h *minmaxData[VALUE]) Push(value VALUE) {
	h.queue = append(h.queue, value)
}

// Pop removes the tail slot. It is supposed to be called by the package
// routines only, after they moved the victim there.
func (h *minmaxData[VALUE]) Pop() (VALUE, error) {
	if len(h.queue) == 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}
	n := len(h.queue) - 1
	value := h.queue[n]
	var zero VALUE
	h.queue[n] = zero
	h.queue = h.queue[:n]
	return value, nil
}

// MinMaxHeap is a double-ended priority queue over a multiset of values.
// Both the minimum and the maximum can be read or removed in O(log n)
// from the one structure; Insert is O(log n) as well. The zero value is
// not usable, construct with NewMinMax or NewMinMaxFrom.
//
// Min-max heap after "Min-Max Heaps and Generalized Priority Queues" by
// Atkinson et al., https://doi.org/10.1145/6617.6621.
type MinMaxHeap[VALUE any] struct {
	data *minmaxData[VALUE]
}

// NewMinMax returns an empty heap ordered by compare.
func NewMinMax[VALUE any](compare Comparator[VALUE]) *MinMaxHeap[VALUE] {
	return &MinMaxHeap[VALUE]{
		data: &minmaxData[VALUE]{compare: compare},
	}
}

// NewMinMaxFrom returns a heap holding values, ordered in O(n) rather
// than by n repeated inserts.
func NewMinMaxFrom[VALUE any](compare Comparator[VALUE], values ...VALUE) *MinMaxHeap[VALUE] {
	queue := make([]VALUE, len(values))
	copy(queue, values)
	heap := &MinMaxHeap[VALUE]{
		data: &minmaxData[VALUE]{queue: queue, compare: compare},
	}
	BuildHeap[VALUE](heap.data)
	return heap
}

func (heap *MinMaxHeap[VALUE]) Insert(value VALUE) {
	Push[VALUE](heap.data, value)
}

// PeekMin returns the smallest value without removing it.
func (heap *MinMaxHeap[VALUE]) PeekMin() (VALUE, error) {
	if heap.data.Len() == 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}
	return heap.data.queue[0], nil
}

// PeekMax returns the largest value without removing it.
func (heap *MinMaxHeap[VALUE]) PeekMax() (VALUE, error) {
	i := MaxIndex[VALUE](heap.data)
	if i < 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}
	return heap.data.queue[i], nil
}

// PopMin removes and returns the smallest value.
func (heap *MinMaxHeap[VALUE]) PopMin() (VALUE, error) {
	return PopMin[VALUE](heap.data)
}

// PopMax removes and returns the largest value.
func (heap *MinMaxHeap[VALUE]) PopMax() (VALUE, error) {
	return PopMax[VALUE](heap.data)
}

// Len returns the number of values in the heap.
func (heap *MinMaxHeap[VALUE]) Len() int {
	return heap.data.Len()
}

// List returns a copy of the backing sequence in tree layout. Meant for
// diagnostics; the order is an implementation detail.
func (heap *MinMaxHeap[VALUE]) List() []VALUE {
	list := make([]VALUE, len(heap.data.queue))
	copy(list, heap.data.queue)
	return list
}
