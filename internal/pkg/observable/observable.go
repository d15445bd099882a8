package observable

import (
	"slices"
	"sync"
)

// Value is a single-writer container that pushes every mutation to its listeners.
// Listeners run synchronously on the writer's goroutine, after the lock is released,
// so a listener may read the value but must not block.
type Value[T any] struct {
	mu        sync.RWMutex
	current   T
	listeners map[int]func(T)
	nextID    int
}

// New creates a container holding initial
func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial, listeners: make(map[int]func(T))}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the value and notifies listeners
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.current = next
	fns := v.snapshot()
	v.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Update applies fn to the current value under the lock and notifies listeners
// with the result. fn must not call back into v.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	next := fn(v.current)
	v.current = next
	fns := v.snapshot()
	v.mu.Unlock()

	for _, l := range fns {
		l(next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

func (v *Value[T]) snapshot() []func(T) {
	if len(v.listeners) == 0 {
		return nil
	}
	ids := make([]int, 0, len(v.listeners))
	for id := range v.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), len(ids))
	for i, id := range ids {
		fns[i] = v.listeners[id]
	}
	return fns
}
