package queue

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ThrottledDeque caps how fast items leave a BlockDeque. Both ends share
// one rate.Limiter, so min and max consumers draw from the same budget.
// Everything except the popping methods passes straight through.
type ThrottledDeque[V any] struct {
	BlockDeque[V]
	limiter *rate.Limiter
}

func NewThrottledDeque[V any](constraint HeapConstraint[V], limit rate.Limit, burst int, opts ...Option) *ThrottledDeque[V] {
	return &ThrottledDeque[V]{
		BlockDeque: NewBlockDeque[V](constraint, opts...),
		limiter:    rate.NewLimiter(limit, burst),
	}
}

func (que *ThrottledDeque[V]) PopMin() (V, error) {
	return que.PopMinCtx(context.Background())
}

func (que *ThrottledDeque[V]) PopMax() (V, error) {
	return que.PopMaxCtx(context.Background())
}

// PopMinCtx takes the smallest item once the limiter admits the caller.
// ctx bounds the wait for quota, not the wait for an item.
func (que *ThrottledDeque[V]) PopMinCtx(ctx context.Context) (V, error) {
	if err := que.wait(ctx); err != nil {
		return *new(V), err
	}
	return que.BlockDeque.PopMin()
}

// PopMaxCtx takes the largest item once the limiter admits the caller.
func (que *ThrottledDeque[V]) PopMaxCtx(ctx context.Context) (V, error) {
	if err := que.wait(ctx); err != nil {
		return *new(V), err
	}
	return que.BlockDeque.PopMax()
}

func (que *ThrottledDeque[V]) wait(ctx context.Context) error {
	if err := que.limiter.Wait(ctx); err != nil {
		logrus.Debugf("throttled pop gave up waiting for quota: %v", err)
		return fmt.Errorf("wait for pop quota: %w", err)
	}
	return nil
}
