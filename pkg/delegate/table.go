// ABOUTME: Token-keyed callable table shared by every registry flavor
// ABOUTME: Handles reach it through a weak reference so they never keep it alive

package delegate

import (
	"sync"
	"sync/atomic"
	"weak"

	"github.com/mauromedda/delegate-go/internal/log"
)

// lastToken is the source of handle tokens. Tokens are never reused, so a
// stale token can never address a newer entry in any table.
var lastToken atomic.Uint64

func nextToken() uint64 {
	return lastToken.Add(1)
}

// owner is the registry side of the handle protocol.
type owner interface {
	holds(token uint64) bool
	release(token uint64) bool
	transfer(from, to *Handle)
	label() string
}

// table owns the callables of one registry, keyed by handle token.
type table[F any] struct {
	mu      sync.Mutex
	name    string
	self    ref[F]
	entries map[uint64]F
	stats   Stats
}

func newTable[F any](cfg config) *table[F] {
	t := &table[F]{
		name:    cfg.name,
		entries: make(map[uint64]F),
	}
	t.self = ref[F]{p: weak.Make(t)}
	return t
}

// subscribe stores fn under a fresh token and binds h to it.
func (t *table[F]) subscribe(h *Handle, fn F) {
	token := nextToken()

	t.mu.Lock()
	t.entries[token] = fn
	t.stats.Subscribed++
	t.mu.Unlock()

	h.attach(t.self, token)
	log.Debug("%s: subscribed handle %d", t.name, token)
}

func (t *table[F]) holds(token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[token]
	return ok
}

func (t *table[F]) release(token uint64) bool {
	t.mu.Lock()
	_, ok := t.entries[token]
	if ok {
		delete(t.entries, token)
		t.stats.Released++
	}
	t.mu.Unlock()

	if ok {
		log.Debug("%s: unsubscribed handle %d", t.name, token)
	}
	return ok
}

// transfer re-keys from's entry under a fresh token owned by to. The entry
// is extracted and reinserted under one lock so no observer sees it missing.
func (t *table[F]) transfer(from, to *Handle) {
	old := from.token
	var token uint64

	t.mu.Lock()
	fn, ok := t.entries[old]
	if ok {
		token = nextToken()
		delete(t.entries, old)
		t.entries[token] = fn
		t.stats.Transfers++
	}
	t.mu.Unlock()

	from.detach()
	if !ok {
		return
	}
	to.attach(t.self, token)
	log.Debug("%s: transferred handle %d to %d", t.name, old, token)
}

// snapshot copies the live callables so dispatch runs without the lock.
func (t *table[F]) snapshot() []F {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Dispatches++
	if len(t.entries) == 0 {
		return nil
	}
	fns := make([]F, 0, len(t.entries))
	for _, fn := range t.entries {
		fns = append(fns, fn)
	}
	t.stats.Calls += uint64(len(fns))
	return fns
}

func (t *table[F]) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// clear drops every entry without calling any. Handles find out lazily:
// their tokens no longer resolve.
func (t *table[F]) clear() {
	t.mu.Lock()
	n := len(t.entries)
	clear(t.entries)
	t.stats.Released += uint64(n)
	t.mu.Unlock()

	log.Debug("%s: cleared %d subscriptions", t.name, n)
}

func (t *table[F]) snapshotStats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats
	s.Active = len(t.entries)
	return s
}

// ref is a non-owning reference to a table. Once the table has been
// collected every operation through ref is a no-op.
type ref[F any] struct {
	p weak.Pointer[table[F]]
}

func (r ref[F]) holds(token uint64) bool {
	t := r.p.Value()
	return t != nil && t.holds(token)
}

func (r ref[F]) release(token uint64) bool {
	t := r.p.Value()
	return t != nil && t.release(token)
}

func (r ref[F]) transfer(from, to *Handle) {
	t := r.p.Value()
	if t == nil {
		from.detach()
		return
	}
	t.transfer(from, to)
}

func (r ref[F]) label() string {
	if t := r.p.Value(); t != nil {
		return t.name
	}
	return "collected"
}
