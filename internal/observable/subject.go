// Package observable provides Subject, a value holder that replays its latest
// value to each new subscriber and then delivers every subsequent value.
//
// Delivery is synchronous and serialized per subject: Publish returns after
// every observer has seen the value, and observers of one subject never run
// concurrently. An observer must not Publish to the subject it is observing
// from inside its callback; reading Value is always safe.
package observable

import (
	"sync"
)

// Observable is the read side of a Subject.
type Observable[T any] interface {
	Value() T
	Subscribe(fn func(T)) (cancel func())
}

// Subject holds the latest value of type T.
type Subject[T any] struct {
	deliver sync.Mutex // serializes Publish and Subscribe

	mu        sync.RWMutex // guards the fields below
	value     T
	published uint64
	nextID    uint64
	observers map[uint64]func(T)
	order     []uint64
}

// NewSubject returns a subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, observers: make(map[uint64]func(T))}
}

// Value returns the latest value without subscribing.
func (s *Subject[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// version counts Publish calls.
func (s *Subject[T]) version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.published
}

// Publish stores v and delivers it to every current observer in
// subscription order.
func (s *Subject[T]) Publish(v T) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	s.value = v
	s.published++
	ids := append([]uint64(nil), s.order...)
	s.mu.Unlock()

	for _, id := range ids {
		if fn, ok := s.observer(id); ok {
			fn(v)
		}
	}
}

// Subscribe registers fn, immediately calls it with the latest value and
// returns a cancel function. Values published after cancel returns are not
// delivered to fn. Cancelling is idempotent and does not affect other
// observers or the stored value.
func (s *Subject[T]) Subscribe(fn func(T)) (cancel func()) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.order = append(s.order, id)
	current := s.value
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Subject[T]) observerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Subject[T]) observer(id uint64) (func(T), bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.observers[id]
	return fn, ok
}

// ReadOnly exposes s without Publish. When clone is non-nil, Value and every
// delivery hand out a fresh copy, so callers cannot reach the stored value.
func ReadOnly[T any](s *Subject[T], clone func(T) T) Observable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return readOnly[T]{subject: s, clone: clone}
}

type readOnly[T any] struct {
	subject *Subject[T]
	clone   func(T) T
}

func (r readOnly[T]) Value() T {
	return r.clone(r.subject.Value())
}

func (r readOnly[T]) Subscribe(fn func(T)) (cancel func()) {
	return r.subject.Subscribe(func(v T) { fn(r.clone(v)) })
}
