package heap

import (
	"fmt"
	"sync"

	cmap "github.com/orcaman/concurrent-map"
)

type options struct {
	lock sync.Locker
}

type Option func(*options)

// WithLocker substitutes the lock guarding the key queue. The default is
// a private RWMutex.
func WithLocker(lock sync.Locker) Option {
	return func(cfg *options) {
		cfg.lock = lock
	}
}

// concurrentHeap is the keyed double-ended heap backed by a concurrent
// item store, for callers mutating from several goroutines.
type concurrentHeap[VALUE any] struct {
	data *concurrentData[VALUE]
}

func (heap *concurrentHeap[VALUE]) Add(value VALUE) {
	key := heap.data.priority.FormStoreKey(value)
	if item, exist := heap.data.items.Get(key); exist {
		item.value = value
		Fix[VALUE](heap.data, item.index)
		return
	}
	Push[VALUE](heap.data, value)
}

// Delete removes an item.
func (heap *concurrentHeap[VALUE]) Delete(value VALUE) error {
	key := heap.data.priority.FormStoreKey(value)
	if item, ok := heap.data.items.Get(key); ok {
		_, err := Remove[VALUE](heap.data, item.index)
		return err
	}
	return fmt.Errorf("object not found")
}

// PeekMin returns the smallest item without removing it.
func (heap *concurrentHeap[VALUE]) PeekMin() (VALUE, error) {
	return heap.data.PeekMin()
}

// PeekMax returns the largest item without removing it.
func (heap *concurrentHeap[VALUE]) PeekMax() (VALUE, error) {
	return heap.data.PeekMax()
}

// PopMin removes and returns the smallest item.
func (heap *concurrentHeap[VALUE]) PopMin() (VALUE, error) {
	return PopMin[VALUE](heap.data)
}

// PopMax removes and returns the largest item.
func (heap *concurrentHeap[VALUE]) PopMax() (VALUE, error) {
	return PopMax[VALUE](heap.data)
}

// Get returns the requested item, or sets exists=false.
func (heap *concurrentHeap[VALUE]) Get(value VALUE) (VALUE, bool) {
	key := heap.data.priority.FormStoreKey(value)
	val, ok := heap.data.items.Get(key)
	if !ok {
		var empty VALUE
		return empty, false
	}
	return val.value, ok
}

// List returns a list of all the items.
func (heap *concurrentHeap[VALUE]) List() []VALUE {
	list := make([]VALUE, 0, heap.data.items.Count())
	for _, item := range heap.data.items.Items() {
		list = append(list, item.value)
	}
	return list
}

// Len returns the number of items in the heap.
func (heap *concurrentHeap[VALUE]) Len() int {
	return heap.data.Len()
}

type concurrentData[VALUE any] struct {
	lock     sync.Locker
	items    cmap.ConcurrentMap[*heapItem[VALUE]]
	queue    []string
	priority Constraint[string, VALUE]
}

func newConcurrentData[V any](lock sync.Locker, handler Constraint[string, V]) *concurrentData[V] {
	if lock == nil {
		lock = &sync.RWMutex{}
	}
	return &concurrentData[V]{
		lock:     lock,
		items:    cmap.New[*heapItem[V]](),
		queue:    make([]string, 0),
		priority: handler,
	}
}

func (h *concurrentData[_]) Less(i, j int) bool {
	if len(h.queue) <= i || len(h.queue) <= j {
		return false
	}
	itemI, ok := h.items.Get(h.queue[i])
	if !ok {
		return false
	}
	itemJ, ok := h.items.Get(h.queue[j])
	if !ok {
		return false
	}

	return h.priority.Less(itemI.value, itemJ.value)
}

func (h *concurrentData[_]) Len() int {
	return len(h.queue)
}

func (h *concurrentData[_]) Swap(i, j int) {
	h.lock.Lock()
	h.queue[i], h.queue[j] = h.queue[j], h.queue[i]
	h.lock.Unlock()
	item, _ := h.items.Get(h.queue[i])
	item.index = i
	item, _ = h.items.Get(h.queue[j])
	item.index = j
}

// Pop removes the tail slot and its item record.
func (h *concurrentData[VALUE]) Pop() (VALUE, error) {
	key := h.queue[len(h.queue)-1]
	h.queue = h.queue[0 : len(h.queue)-1]
	item, ok := h.items.Get(key)
	if !ok {
		var empty VALUE
		return empty, fmt.Errorf("pop key %s with no item: %w", key, ErrEmptyHeap)
	}
	h.items.Remove(key)
	return item.value, nil
}

func (h *concurrentData[VALUE]) Push(value VALUE) {
	n := len(h.queue)
	key := h.priority.FormStoreKey(value)
	h2 := heapItem[VALUE]{index: n, value: value}
	h.items.Set(key, &h2)
	h.queue = append(h.queue, key)
}

func (h *concurrentData[VALUE]) PeekMin() (VALUE, error) {
	var empty VALUE
	if len(h.queue) == 0 {
		return empty, ErrEmptyHeap
	}
	item, ok := h.items.Get(h.queue[0])
	if !ok {
		return empty, fmt.Errorf("can not find queue head")
	}
	return item.value, nil
}

func (h *concurrentData[VALUE]) PeekMax() (VALUE, error) {
	var empty VALUE
	i := MaxIndex[VALUE](h)
	if i < 0 {
		return empty, ErrEmptyHeap
	}
	item, ok := h.items.Get(h.queue[i])
	if !ok {
		return empty, fmt.Errorf("can not find queue max")
	}
	return item.value, nil
}

// NewConcurrent returns a keyed double-ended heap safe for concurrent
// use.
func NewConcurrent[VALUE any](priority Constraint[string, VALUE], opts ...Option) Heap[VALUE] {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	return newConcurrent[VALUE](priority, cfg)
}

func newConcurrent[VALUE any](priority Constraint[string, VALUE], cfg *options) *concurrentHeap[VALUE] {
	return &concurrentHeap[VALUE]{
		data: newConcurrentData[VALUE](cfg.lock, priority),
	}
}
