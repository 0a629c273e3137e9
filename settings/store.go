package settings

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotWritable is returned when writing a key marked read-only.
var ErrNotWritable = errors.New("key is not writable")

// HandlerID identifies one change-subscription registration.
type HandlerID uint64

// Store is a key-addressed store of typed values with per-key change
// notification.
type Store struct {
	id string

	mu       sync.RWMutex
	values   map[string]any
	readOnly map[string]struct{}

	handlers    map[string]map[HandlerID]func()
	handlerKeys map[HandlerID]string
	nextHandler HandlerID
}

// NewStore returns an empty store bound to the given storage
// identifier.
func NewStore(id string) *Store {
	return &Store{
		id:          id,
		values:      make(map[string]any),
		readOnly:    make(map[string]struct{}),
		handlers:    make(map[string]map[HandlerID]func()),
		handlerKeys: make(map[HandlerID]string),
	}
}

// ID returns the storage identifier the store was created with.
func (s *Store) ID() string {
	return s.id
}

// Value returns the raw stored value for key.
func (s *Store) Value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]

	return v, ok
}

// SetValue writes a raw value and notifies subscribers. Writing a
// read-only key fails.
func (s *Store) SetValue(key string, value any) error {
	s.mu.Lock()

	if _, ro := s.readOnly[key]; ro {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotWritable, key)
	}

	s.values[key] = value
	fns := s.handlersLocked(key)
	s.mu.Unlock()

	// Handlers run outside the lock so they may call back into the store.
	for _, f := range fns {
		f()
	}

	return nil
}

// MarkReadOnly makes subsequent writes to key fail. Used to model a
// backend that refuses writes.
func (s *Store) MarkReadOnly(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readOnly[key] = struct{}{}
}

// Connect registers f to run whenever key's stored value changes.
// Registrations are independent; all registered handlers fire.
func (s *Store) Connect(key string, f func()) HandlerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextHandler++
	id := s.nextHandler

	if s.handlers[key] == nil {
		s.handlers[key] = make(map[HandlerID]func())
	}

	s.handlers[key][id] = f
	s.handlerKeys[id] = key

	return id
}

// Disconnect removes a previously registered handler. Unknown ids are
// ignored.
func (s *Store) Disconnect(id HandlerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.handlerKeys[id]
	if !ok {
		return
	}

	delete(s.handlers[key], id)
	delete(s.handlerKeys, id)
}

func (s *Store) handlersLocked(key string) []func() {
	m := s.handlers[key]
	if len(m) == 0 {
		return nil
	}

	fns := make([]func(), 0, len(m))
	for _, f := range m {
		fns = append(fns, f)
	}

	return fns
}

// Get reads key's value as T. A missing key or a stored value of a
// different type yields T's zero value.
func Get[T any](s *Store, key string) T {
	var zero T

	v, ok := s.Value(key)
	if !ok {
		return zero
	}

	t, ok := v.(T)
	if !ok {
		return zero
	}

	return t
}

// Set writes key's value as T. The error mirrors SetValue.
func Set[T any](s *Store, key string, value T) error {
	return s.SetValue(key, value)
}
