package reactive

// Scope owns a set of signals and child scopes. Disposing a scope disposes
// its children first, then detaches every signal created in it; further Set
// and Track calls on those signals become no-ops.
type Scope struct {
	parent    *Scope
	children  []*Scope
	disposers []func()
	disposed  bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Child creates a scope owned by s. It is disposed when s is disposed, or
// earlier by its own Dispose call.
func (s *Scope) Child() *Scope {
	c := &Scope{parent: s}
	s.children = append(s.children, c)
	return c
}

// Dispose tears down the scope's subtree. Safe to call more than once.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, c := range s.children {
		c.Dispose()
	}
	s.children = nil
	for _, f := range s.disposers {
		f()
	}
	s.disposers = nil
}

// Disposed reports whether the scope has been torn down.
func (s *Scope) Disposed() bool { return s.disposed }

func (s *Scope) onDispose(f func()) {
	if s.disposed {
		f()
		return
	}
	s.disposers = append(s.disposers, f)
}
