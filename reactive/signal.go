package reactive

// Signal is an observable value owned by a Scope. Get reads the current
// value, Set replaces it and notifies observers, Track registers an observer
// for subsequent changes.
type Signal[T comparable] struct {
	value    T
	subs     map[int]func(T)
	nextID   int
	disposed bool
}

// NewSignal creates a signal owned by scope. When the scope is disposed the
// signal drops its observers and ignores later Set and Track calls.
func NewSignal[T comparable](scope *Scope, initial T) *Signal[T] {
	s := &Signal[T]{value: initial, subs: make(map[int]func(T))}
	scope.onDispose(func() {
		s.disposed = true
		s.subs = nil
	})
	return s
}

// Get returns the current value. Valid after disposal; the last value sticks.
func (s *Signal[T]) Get() T { return s.value }

// Set replaces the value and notifies observers. Setting an equal value does
// not notify.
func (s *Signal[T]) Set(v T) {
	if s.disposed || v == s.value {
		return
	}
	s.value = v
	for _, fn := range s.subs {
		fn(v)
	}
}

// Update applies f to the current value and Sets the result.
func (s *Signal[T]) Update(f func(T) T) {
	s.Set(f(s.value))
}

// Track registers fn to run on every subsequent change. The returned cancel
// removes the observer; it is safe to call after disposal.
func (s *Signal[T]) Track(fn func(T)) (cancel func()) {
	if s.disposed {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		if s.subs != nil {
			delete(s.subs, id)
		}
	}
}
