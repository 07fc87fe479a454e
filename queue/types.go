package queue

import (
	"sync"

	"github.com/LiuYuuChen/minmaxheap/heap"
)

// Deque is a double-ended priority queue: consumers may take from the
// cheap end or the expensive end of the same item set.
type Deque[V any] interface {
	Add(value V)
	Update(value V) error
	Delete(value V) error
	Get(value V) (V, bool)
	PeekMin() (V, error)
	PeekMax() (V, error)
	PopMin() (V, error)
	PopMax() (V, error)
	List() []V
	Len() int
}

type HeapConstraint[VALUE any] interface {
	heap.Constraint[string, VALUE]
}

// BlockDeque blocks poppers while empty instead of failing, until
// Shutdown releases them.
type BlockDeque[V any] interface {
	Deque[V]
	Shutdown()
	IsShutdown() bool
}

type config struct {
	lock sync.Locker
}

type Option func(*config)

func WithLocker(lock sync.Locker) Option {
	return func(cfg *config) {
		cfg.lock = lock
	}
}
