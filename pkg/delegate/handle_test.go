// ABOUTME: Tests for subscription handle lifecycle: move, take, unsubscribe
// ABOUTME: Checks that a subscription fires exactly once whichever handle holds it

package delegate

import (
	"strings"
	"testing"
)

func TestHandle_ZeroValue(t *testing.T) {
	t.Parallel()

	var h Handle
	if h.Bound() {
		t.Error("zero handle reports bound")
	}
	if h.ID() != 0 {
		t.Errorf("ID() = %d, want 0", h.ID())
	}

	h.Unsubscribe()
	h.Unsubscribe()
	h.Take(new(Handle))
	moved := Move(&h)

	if moved.Bound() {
		t.Error("handle moved from an unbound handle reports bound")
	}
}

func TestHandle_NilReceiver(t *testing.T) {
	t.Parallel()

	var h *Handle
	h.Unsubscribe()
	h.Take(nil)
	if h.Bound() {
		t.Error("nil handle reports bound")
	}
	if got := h.String(); got != "handle(unbound)" {
		t.Errorf("String() = %q, want %q", got, "handle(unbound)")
	}
}

func TestHandle_UnsubscribeIdempotent(t *testing.T) {
	t.Parallel()

	d := New[int]()
	h := d.Subscribe(func(int) {})
	keep := d.Subscribe(func(int) {})
	defer keep.Unsubscribe()

	for i := range 3 {
		h.Unsubscribe()
		if d.Count() != 1 {
			t.Errorf("after unsubscribe %d: Count() = %d, want 1", i, d.Count())
		}
	}
}

// A subscription moved into a new handle keeps firing after the source
// handle is released.
func TestHandle_MoveConstruct(t *testing.T) {
	t.Parallel()

	s := NewSignal()
	calls := 0

	a := s.Subscribe(func() { calls++ })
	b := Move(a)
	defer b.Unsubscribe()

	a.Unsubscribe()
	s.Invoke()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if a.Bound() {
		t.Error("source handle still bound after move")
	}
	if !b.Bound() {
		t.Error("moved handle not bound")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestHandle_TakeReleasesOwnSubscription(t *testing.T) {
	t.Parallel()

	d := New[int]()
	var oldCalls, newCalls int
	h := d.Subscribe(func(int) { oldCalls++ })
	defer h.Unsubscribe()
	src := d.Subscribe(func(int) { newCalls++ })

	h.Take(src)
	d.Invoke(0)

	if oldCalls != 0 || newCalls != 1 {
		t.Errorf("calls = (old %d, new %d), want (0, 1)", oldCalls, newCalls)
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1", d.Count())
	}
}

func TestHandle_TakeFromUnboundReleases(t *testing.T) {
	t.Parallel()

	d := New[int]()
	h := d.Subscribe(func(int) {})

	h.Take(new(Handle))

	if h.Bound() {
		t.Error("handle still bound after taking an unbound handle")
	}
	if d.Count() != 0 {
		t.Errorf("Count() = %d, want 0", d.Count())
	}
}

func TestHandle_TakeSelf(t *testing.T) {
	t.Parallel()

	d := New[int]()
	calls := 0
	h := d.Subscribe(func(int) { calls++ })
	defer h.Unsubscribe()

	h.Take(h)
	d.Invoke(0)

	if !h.Bound() {
		t.Error("self take unbound the handle")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestHandle_TakeAcrossRegistries(t *testing.T) {
	t.Parallel()

	a := New[int]()
	b := NewSignal()
	var aCalls, bCalls int
	h := a.Subscribe(func(int) { aCalls++ })
	defer h.Unsubscribe()
	src := b.Subscribe(func() { bCalls++ })

	h.Take(src)
	a.Invoke(0)
	b.Invoke()

	if a.Count() != 0 || b.Count() != 1 {
		t.Errorf("counts = (%d, %d), want (0, 1)", a.Count(), b.Count())
	}
	if aCalls != 0 || bCalls != 1 {
		t.Errorf("calls = (%d, %d), want (0, 1)", aCalls, bCalls)
	}

	b.Unsubscribe(h)
	if h.Bound() || b.Count() != 0 {
		t.Error("signal could not release the handle it now owns")
	}
}

// Moving a subscription through a chain of handles never duplicates or
// drops the callable.
func TestHandle_MoveChain(t *testing.T) {
	t.Parallel()

	d := New[int]()
	calls := 0
	h := d.Subscribe(func(int) { calls++ })

	for range 10 {
		next := Move(h)
		if h.Bound() {
			t.Fatal("source still bound after move")
		}
		h = next
		d.Invoke(0)
	}
	defer h.Unsubscribe()

	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1", d.Count())
	}
}

func TestHandle_IDChangesOnMove(t *testing.T) {
	t.Parallel()

	d := New[int](WithName("ids"))
	h := d.Subscribe(func(int) {})
	first := h.ID()
	if first == 0 {
		t.Fatal("bound handle has zero ID")
	}
	if !strings.HasPrefix(h.String(), "handle(ids#") {
		t.Errorf("String() = %q, want prefix %q", h.String(), "handle(ids#")
	}

	moved := Move(h)
	defer moved.Unsubscribe()

	if moved.ID() == first {
		t.Error("moved handle reuses the source token")
	}
	if h.ID() != 0 {
		t.Errorf("source ID() = %d, want 0", h.ID())
	}
}
