package queue

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/LiuYuuChen/minmaxheap/heap"
)

type blockDeque[V any] struct {
	cond *sync.Cond
	heap heap.Heap[V]

	stopping bool
	stopped  bool
}

func NewBlockDeque[V any](constraint HeapConstraint[V], opts ...Option) BlockDeque[V] {
	cfg := &config{lock: &sync.RWMutex{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return newBlockDeque[V](constraint, cfg)
}

func newBlockDeque[V any](constraint HeapConstraint[V], cfg *config) *blockDeque[V] {
	return &blockDeque[V]{
		cond: sync.NewCond(cfg.lock),
		heap: heap.NewConcurrent[V](constraint),
	}
}

func (que *blockDeque[V]) Add(value V) {
	que.cond.L.Lock()
	que.heap.Add(value)
	que.cond.L.Unlock()
	que.cond.Broadcast()
}

func (que *blockDeque[V]) Update(value V) error {
	que.cond.L.Lock()
	defer que.cond.Broadcast()
	defer que.cond.L.Unlock()
	if que.stopping {
		return fmt.Errorf("can not update an item in a closing queue")
	}

	_, ok := que.heap.Get(value)
	if !ok {
		return fmt.Errorf("can not update an item not in queue")
	}

	que.heap.Add(value)
	return nil
}

func (que *blockDeque[V]) Delete(value V) error {
	que.cond.L.Lock()
	defer que.cond.L.Unlock()
	return que.heap.Delete(value)
}

func (que *blockDeque[V]) Get(value V) (V, bool) {
	return que.heap.Get(value)
}

func (que *blockDeque[V]) List() []V {
	return que.heap.List()
}

func (que *blockDeque[V]) PeekMin() (V, error) {
	return que.heap.PeekMin()
}

func (que *blockDeque[V]) PeekMax() (V, error) {
	return que.heap.PeekMax()
}

// PopMin takes the smallest item, blocking while the queue is empty.
func (que *blockDeque[V]) PopMin() (V, error) {
	return que.blockPop(que.heap.PopMin)
}

// PopMax takes the largest item, blocking while the queue is empty.
func (que *blockDeque[V]) PopMax() (V, error) {
	return que.blockPop(que.heap.PopMax)
}

func (que *blockDeque[V]) blockPop(pop func() (V, error)) (V, error) {
	que.cond.L.Lock()
	defer que.cond.L.Unlock()
	for {
		for que.heap.Len() == 0 && !que.stopping {
			que.cond.Wait()
		}

		if que.stopped {
			return *new(V), fmt.Errorf("pop a closed queue")
		}

		// A shut-down queue still drains; it closes once empty.
		if que.stopping && que.heap.Len() == 0 {
			que.stopped = true
			return *new(V), fmt.Errorf("pop a closed queue")
		}

		item, err := pop()
		if err != nil {
			logrus.Warnf("block deque retries a raced pop: %v", err)
			continue
		}

		return item, nil
	}
}

func (que *blockDeque[V]) Len() int {
	return que.heap.Len()
}

func (que *blockDeque[V]) Shutdown() {
	que.cond.L.Lock()
	que.stopping = true
	que.cond.L.Unlock()
	que.cond.Broadcast()
	logrus.Debugf("block deque is shutting down with %d items left", que.heap.Len())
}

func (que *blockDeque[V]) IsShutdown() bool {
	que.cond.L.Lock()
	stopping := que.stopping
	que.cond.L.Unlock()
	return stopping
}
