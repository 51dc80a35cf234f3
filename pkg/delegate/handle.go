// ABOUTME: Subscription handle: the caller-held token that controls one subscription
// ABOUTME: Releasing, taking, or dropping a handle drives the registry; handles are never copied

package delegate

import (
	"fmt"
	"runtime"

	"github.com/mauromedda/delegate-go/internal/log"
)

// noCopy lets `go vet` (copylocks) flag handles copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle controls the lifetime of one subscription. The zero value is an
// unbound handle; every operation on it is a no-op.
//
// A Handle must not be copied after first use. Pass *Handle around and use
// Move or Take to hand a subscription to another handle.
type Handle struct {
	_ noCopy

	owner   owner
	token   uint64
	cleanup runtime.Cleanup
}

// orphan is what a handle's cleanup needs to release its entry. It must
// not reference the handle itself or the cleanup would never run.
type orphan struct {
	owner owner
	token uint64
}

func releaseOrphan(o orphan) {
	if o.owner.release(o.token) {
		log.Debug("%s: released unreachable handle %d", o.owner.label(), o.token)
	}
}

// Move returns a new handle holding from's subscription. from is left
// unbound. Moving an unbound handle returns an unbound handle.
func Move(from *Handle) *Handle {
	h := new(Handle)
	h.Take(from)
	return h
}

// Take releases h's own subscription and then, if from is bound, moves
// from's subscription into h. The callable is not touched. h.Take(h) is a
// no-op.
func (h *Handle) Take(from *Handle) {
	if h == nil || h == from {
		return
	}
	h.Unsubscribe()
	if from == nil || from.owner == nil {
		return
	}
	from.owner.transfer(from, h)
}

// Unsubscribe releases the subscription, if any. It is idempotent and safe
// on unbound handles, including after the registry was cleared or
// collected.
func (h *Handle) Unsubscribe() {
	if h == nil || h.owner == nil {
		return
	}
	h.owner.release(h.token)
	h.detach()
}

// Bound reports whether h currently holds a live subscription.
func (h *Handle) Bound() bool {
	return h != nil && h.owner != nil && h.owner.holds(h.token)
}

// ID returns the handle's current token, or 0 when unbound. Tokens change
// when a subscription moves between handles.
func (h *Handle) ID() uint64 {
	if !h.Bound() {
		return 0
	}
	return h.token
}

func (h *Handle) String() string {
	if !h.Bound() {
		return "handle(unbound)"
	}
	return fmt.Sprintf("handle(%s#%d)", h.owner.label(), h.token)
}

// belongsTo reports whether h is bound to the registry behind o.
func (h *Handle) belongsTo(o owner) bool {
	return h != nil && h.owner == o
}

// attach is called by a table after it stored an entry under token.
func (h *Handle) attach(o owner, token uint64) {
	h.owner = o
	h.token = token
	h.cleanup = runtime.AddCleanup(h, releaseOrphan, orphan{owner: o, token: token})
}

// detach forgets the registry. The caller has already removed or moved the
// entry.
func (h *Handle) detach() {
	h.cleanup.Stop()
	h.owner = nil
	h.token = 0
	h.cleanup = runtime.Cleanup{}
}
