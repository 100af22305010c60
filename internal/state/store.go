// Package state holds the panel's process-local state. Each holder owns one
// value, notifies subscribers after every successful mutation, and can be
// snapshotted to JSON and restored from it for persistence.
package state

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store is an observable holder for a plain, JSON-serializable value
type Store[T any] struct {
	key      string
	clone    func(T) T
	validate func(T) error

	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
}

func newStore[T any](key string, initial T, clone func(T) T, validate func(T) error) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{
		key:      key,
		clone:    clone,
		validate: validate,
		value:    clone(initial),
		subs:     make(map[int]func(T)),
	}
}

// Key is the stable identifier the value is persisted under
func (s *Store[T]) Key() string {
	return s.key
}

// Get returns a copy of the current value
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

// Set replaces the value and notifies subscribers
func (s *Store[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update replaces the value with fn(current) and notifies subscribers.
// fn runs under the write lock and must not call back into the store.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = s.clone(fn(s.value))
	current := s.clone(s.value)
	subs := s.subscribers()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(current)
	}
}

// Subscribe registers fn to run after every mutation, with the new value.
// The returned func removes the subscription.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Watch is Subscribe for callers that do not need the value
func (s *Store[T]) Watch(fn func()) (unsubscribe func()) {
	return s.Subscribe(func(T) { fn() })
}

// Snapshot encodes the current value as JSON
func (s *Store[T]) Snapshot() ([]byte, error) {
	data, err := json.Marshal(s.Get())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", s.key, err)
	}
	return data, nil
}

// Restore decodes data and installs it as the current value. Data that does
// not decode, or that the store's validate func rejects, leaves the store
// unchanged.
func (s *Store[T]) Restore(data []byte) error {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", s.key, err)
	}
	if s.validate != nil {
		if err := s.validate(value); err != nil {
			return fmt.Errorf("invalid %s: %w", s.key, err)
		}
	}
	s.Set(value)
	return nil
}

// subscribers returns the callbacks in registration order; caller holds mu
func (s *Store[T]) subscribers() []func(T) {
	out := make([]func(T), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
