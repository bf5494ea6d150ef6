// Package lazy creates shared clients on first use and reuses them for the
// lifetime of the process.
package lazy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Value holds a handle opened on the first Get. Concurrent first callers
// share a single open attempt. A failed attempt is not cached, the next Get
// tries again.
type Value[T any] struct {
	open  func(ctx context.Context) (T, error)
	group singleflight.Group

	mu    sync.RWMutex
	value T
	ready bool
}

func New[T any](open func(ctx context.Context) (T, error)) *Value[T] {
	return &Value[T]{open: open}
}

func (v *Value[T]) Get(ctx context.Context) (T, error) {
	if value, ok := v.Peek(); ok {
		return value, nil
	}

	res, err, _ := v.group.Do("open", func() (interface{}, error) {
		if value, ok := v.Peek(); ok {
			return value, nil
		}
		// the handle outlives the request that happened to open it
		value, err := v.open(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		v.value = value
		v.ready = true
		v.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// Peek returns the handle without opening it.
func (v *Value[T]) Peek() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.ready
}
