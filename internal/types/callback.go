package types

import (
	"iter"
	"sync"
)

// CallbackManager holds an ordered collection of callbacks of an arbitrary
// function type T. Callbacks are yielded in registration order.
// The zero value is ready to use.
type CallbackManager[T any] struct {
	mu     sync.RWMutex
	cbs    []callback[T]
	nextID int
}

type callback[T any] struct {
	id int
	cb T
}

func (m *CallbackManager[T]) Len() int {
	if m == nil {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cbs)
}

// Add registers cb after all previously registered callbacks and returns
// a func that removes it. The remove func is idempotent.
func (m *CallbackManager[T]) Add(cb T) (remove func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.cbs = append(m.cbs, callback[T]{id, cb})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			for i, entry := range m.cbs {
				if entry.id == id {
					m.cbs = append(m.cbs[:i], m.cbs[i+1:]...)
					break
				}
			}
			m.mu.Unlock()
		})
	}
}

// All returns an iterator over the registered callbacks in registration order.
// The iteration works on a snapshot, callbacks may register or remove other
// callbacks without deadlocking.
func (m *CallbackManager[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m == nil {
			return
		}

		m.mu.RLock()
		callbacks := make([]T, len(m.cbs))
		for i, entry := range m.cbs {
			callbacks[i] = entry.cb
		}
		m.mu.RUnlock()

		for _, cb := range callbacks {
			if !yield(cb) {
				return
			}
		}
	}
}
