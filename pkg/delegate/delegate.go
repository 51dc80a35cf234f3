// ABOUTME: Typed synchronous multicast delegate with handle-scoped subscriptions
// ABOUTME: Subscribers run on the caller's goroutine in unspecified order

package delegate

// Delegate is a registry of callbacks taking one argument of type T. Use a
// struct for T when several values must travel together.
//
// The zero value is ready to use. A Delegate must not be copied after first
// use.
type Delegate[T any] struct {
	_ noCopy

	t *table[func(T)]
}

// New creates a delegate.
func New[T any](opts ...Option) *Delegate[T] {
	return &Delegate[T]{t: newTable[func(T)](newConfig(opts))}
}

func (d *Delegate[T]) table() *table[func(T)] {
	if d.t == nil {
		d.t = newTable[func(T)](newConfig(nil))
	}
	return d.t
}

// Subscribe registers fn and returns the handle that owns the
// subscription. Releasing or dropping the handle unsubscribes fn.
func (d *Delegate[T]) Subscribe(fn func(T)) *Handle {
	if fn == nil {
		fn = func(T) {}
	}
	h := new(Handle)
	d.table().subscribe(h, fn)
	return h
}

// Unsubscribe releases h if it is bound to this delegate. Handles bound
// elsewhere, unbound handles and nil are ignored.
func (d *Delegate[T]) Unsubscribe(h *Handle) {
	if h.belongsTo(d.table().self) {
		h.Unsubscribe()
	}
}

// Transfer moves old's subscription to h without touching the callable.
// Whatever h held before is released. If old is not bound to this delegate
// nothing happens and h is left as it was.
func (d *Delegate[T]) Transfer(old, h *Handle) {
	if old == h || !old.belongsTo(d.table().self) || !old.Bound() {
		return
	}
	h.Take(old)
}

// Invoke calls every subscriber once with arg. Subscriptions changed while
// Invoke runs take effect from the next call.
func (d *Delegate[T]) Invoke(arg T) {
	for _, fn := range d.table().snapshot() {
		fn(arg)
	}
}

// Count returns the number of live subscriptions.
func (d *Delegate[T]) Count() int {
	return d.table().count()
}

// ClearAll drops every subscription without calling any. Handles that held
// them become unbound and may be reused.
func (d *Delegate[T]) ClearAll() {
	d.table().clear()
}

// Stats returns a snapshot of the delegate's counters.
func (d *Delegate[T]) Stats() Stats {
	return d.table().snapshotStats()
}
