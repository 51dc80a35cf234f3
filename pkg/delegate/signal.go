// ABOUTME: Argument-less delegate for plain "something happened" notifications
// ABOUTME: Shares the handle protocol and table with Delegate

package delegate

// Signal is a delegate whose subscribers take no arguments. The zero value
// is ready to use. A Signal must not be copied after first use.
type Signal struct {
	_ noCopy

	t *table[func()]
}

// NewSignal creates a signal.
func NewSignal(opts ...Option) *Signal {
	return &Signal{t: newTable[func()](newConfig(opts))}
}

func (s *Signal) table() *table[func()] {
	if s.t == nil {
		s.t = newTable[func()](newConfig(nil))
	}
	return s.t
}

// Subscribe registers fn and returns the handle that owns the
// subscription.
func (s *Signal) Subscribe(fn func()) *Handle {
	if fn == nil {
		fn = func() {}
	}
	h := new(Handle)
	s.table().subscribe(h, fn)
	return h
}

// Unsubscribe releases h if it is bound to this signal.
func (s *Signal) Unsubscribe(h *Handle) {
	if h.belongsTo(s.table().self) {
		h.Unsubscribe()
	}
}

// Transfer moves old's subscription to h. See Delegate.Transfer.
func (s *Signal) Transfer(old, h *Handle) {
	if old == h || !old.belongsTo(s.table().self) || !old.Bound() {
		return
	}
	h.Take(old)
}

// Invoke calls every subscriber once.
func (s *Signal) Invoke() {
	for _, fn := range s.table().snapshot() {
		fn()
	}
}

// Count returns the number of live subscriptions.
func (s *Signal) Count() int {
	return s.table().count()
}

// ClearAll drops every subscription without calling any.
func (s *Signal) ClearAll() {
	s.table().clear()
}

// Stats returns a snapshot of the signal's counters.
func (s *Signal) Stats() Stats {
	return s.table().snapshotStats()
}
