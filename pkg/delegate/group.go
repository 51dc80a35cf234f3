// ABOUTME: Group collects handles so a set of subscriptions can be released together
// ABOUTME: Typical owner: a component that subscribes to several delegates and tears down at once

package delegate

// Group owns a set of handles. The zero value is ready to use. A Group is
// not safe for concurrent use.
type Group struct {
	_ noCopy

	handles []*Handle
}

// Add takes ownership of h and returns it. nil is ignored.
func (g *Group) Add(h *Handle) *Handle {
	if h != nil {
		g.handles = append(g.handles, h)
	}
	return h
}

// Len returns the number of handles in the group, bound or not.
func (g *Group) Len() int {
	return len(g.handles)
}

// Bound returns how many handles in the group still hold a subscription.
func (g *Group) Bound() int {
	n := 0
	for _, h := range g.handles {
		if h.Bound() {
			n++
		}
	}
	return n
}

// Clear unsubscribes every handle and empties the group.
func (g *Group) Clear() {
	for _, h := range g.handles {
		h.Unsubscribe()
	}
	clear(g.handles)
	g.handles = g.handles[:0]
}
