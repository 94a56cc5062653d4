package config

import "sync"

// Memo is a process-wide memoized value with a single in-flight load guard:
// concurrent callers that miss the cache share one loader call instead of
// each hitting the database.
type Memo[T any] struct {
	mu       sync.Mutex
	loaded   bool
	value    T
	inflight chan struct{} // non-nil while a load is running
}

// Get returns the cached value, invoking load at most once per miss.
// A failed load leaves the cache empty so the next caller retries.
func (m *Memo[T]) Get(load func() (T, error)) (T, error) {
	for {
		m.mu.Lock()
		if m.loaded {
			v := m.value
			m.mu.Unlock()
			return v, nil
		}
		if m.inflight != nil {
			ch := m.inflight
			m.mu.Unlock()
			<-ch
			continue
		}
		m.inflight = make(chan struct{})
		m.mu.Unlock()

		v, err := load()

		m.mu.Lock()
		close(m.inflight)
		m.inflight = nil
		if err != nil {
			m.mu.Unlock()
			var zero T
			return zero, err
		}
		m.value = v
		m.loaded = true
		m.mu.Unlock()
		return v, nil
	}
}

// Invalidate drops the cached value. The next Get reloads.
func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	m.loaded = false
	m.mu.Unlock()
}
