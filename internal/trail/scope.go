package trail

// Scope collects cleanup funcs and releases all of them at once, in reverse
// order of registration.
type Scope struct {
	fns    []func()
	closed bool
}

// Add registers fn. Adding to a closed scope runs fn immediately so late
// registrations cannot outlive the scope.
func (s *Scope) Add(fn func()) {
	if fn == nil {
		return
	}
	if s.closed {
		fn()
		return
	}
	s.fns = append(s.fns, fn)
}

// Close runs every registered func once. Later calls do nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.fns) - 1; i >= 0; i-- {
		s.fns[i]()
	}
	s.fns = nil
}

func (s *Scope) Closed() bool { return s.closed }

// Len is the number of pending cleanups.
func (s *Scope) Len() int { return len(s.fns) }
