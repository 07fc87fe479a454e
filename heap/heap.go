package heap

import (
	"fmt"
)

// Constraint projects a value to its store key and supplies the ordering
// between values. Keys identify items for Add/Delete/Get; the ordering
// decides which ends PopMin and PopMax take from.
type Constraint[KEY comparable, VALUE any] interface {
	FormStoreKey(VALUE) KEY
	Less(VALUE, VALUE) bool
}

type heapItem[VALUE any] struct {
	index int
	value VALUE
}

type data[KEY comparable, VALUE any] struct {
	items    map[KEY]*heapItem[VALUE]
	queue    []KEY
	priority Constraint[KEY, VALUE]
}

func newData[KEY comparable, VALUE any](priority Constraint[KEY, VALUE]) *data[KEY, VALUE] {
	return &data[KEY, VALUE]{
		items:    make(map[KEY]*heapItem[VALUE]),
		priority: priority,
	}
}

func (h *data[_, _]) Less(i, j int) bool {
	if len(h.queue) <= i || len(h.queue) <= j {
		return false
	}

	return h.priority.Less(h.items[h.queue[i]].value, h.items[h.queue[j]].value)
}

func (h *data[_, _]) Len() int {
	return len(h.queue)
}

func (h *data[_, _]) Swap(i, j int) {
	h.queue[i], h.queue[j] = h.queue[j], h.queue[i]
	item := h.items[h.queue[i]]
	item.index = i
	item = h.items[h.queue[j]]
	item.index = j
}

// Pop removes the tail slot and its item record.
func (h *data[_, VALUE]) Pop() (VALUE, error) {
	key := h.queue[len(h.queue)-1]
	h.queue = h.queue[0 : len(h.queue)-1]
	item, ok := h.items[key]
	if !ok {
		var empty VALUE
		return empty, fmt.Errorf("pop key %v with no item: %w", key, ErrEmptyHeap)
	}
	delete(h.items, key)
	return item.value, nil
}

func (h *data[_, VALUE]) Push(value VALUE) {
	n := len(h.queue)
	key := h.priority.FormStoreKey(value)
	h2 := heapItem[VALUE]{index: n, value: value}
	h.items[key] = &h2
	h.queue = append(h.queue, key)
}

func (h *data[_, VALUE]) PeekMin() (VALUE, error) {
	if len(h.queue) > 0 {
		return h.items[h.queue[0]].value, nil
	}
	var empty VALUE
	return empty, ErrEmptyHeap
}

func (h *data[_, VALUE]) PeekMax() (VALUE, error) {
	i := MaxIndex[VALUE](h)
	if i < 0 {
		var empty VALUE
		return empty, ErrEmptyHeap
	}
	return h.items[h.queue[i]].value, nil
}

// keyedHeap is a double-ended priority queue whose items are addressable
// by key: adding a value whose key is present updates that item in place
// and re-establishes the ordering around it.
type keyedHeap[KEY comparable, VALUE any] struct {
	data *data[KEY, VALUE]
}

func (heap *keyedHeap[KEY, VALUE]) Add(value VALUE) {
	key := heap.data.priority.FormStoreKey(value)
	if _, exist := heap.data.items[key]; exist {
		heap.data.items[key].value = value
		Fix[VALUE](heap.data, heap.data.items[key].index)
		return
	}
	Push[VALUE](heap.data, value)
}

// Delete removes an item.
func (heap *keyedHeap[KEY, VALUE]) Delete(value VALUE) error {
	key := heap.data.priority.FormStoreKey(value)
	if item, ok := heap.data.items[key]; ok {
		_, err := Remove[VALUE](heap.data, item.index)
		return err
	}
	return fmt.Errorf("object not found")
}

// PeekMin returns the smallest item without removing it.
func (heap *keyedHeap[KEY, VALUE]) PeekMin() (VALUE, error) {
	return heap.data.PeekMin()
}

// PeekMax returns the largest item without removing it.
func (heap *keyedHeap[KEY, VALUE]) PeekMax() (VALUE, error) {
	return heap.data.PeekMax()
}

// PopMin removes and returns the smallest item.
func (heap *keyedHeap[KEY, VALUE]) PopMin() (VALUE, error) {
	return PopMin[VALUE](heap.data)
}

// PopMax removes and returns the largest item.
func (heap *keyedHeap[KEY, VALUE]) PopMax() (VALUE, error) {
	return PopMax[VALUE](heap.data)
}

// Get returns the requested item, or sets exists=false.
func (heap *keyedHeap[KEY, VALUE]) Get(value VALUE) (VALUE, bool) {
	key := heap.data.priority.FormStoreKey(value)
	val, ok := heap.data.items[key]
	if !ok {
		var empty VALUE
		return empty, false
	}
	return val.value, ok
}

// List returns a list of all the items.
func (heap *keyedHeap[KEY, VALUE]) List() []VALUE {
	list := make([]VALUE, 0, len(heap.data.items))
	for _, item := range heap.data.items {
		list = append(list, item.value)
	}
	return list
}

// Len returns the number of items in the heap.
func (heap *keyedHeap[KEY, VALUE]) Len() int {
	return len(heap.data.queue)
}

// New returns a keyed double-ended heap ordered by priority.
func New[KEY comparable, VALUE any](priority Constraint[KEY, VALUE]) Heap[VALUE] {
	return newKeyed[KEY, VALUE](priority)
}

func newKeyed[KEY comparable, VALUE any](priority Constraint[KEY, VALUE]) *keyedHeap[KEY, VALUE] {
	return &keyedHeap[KEY, VALUE]{
		data: newData[KEY, VALUE](priority),
	}
}
