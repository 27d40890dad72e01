package signal

// HandlerSet is an ordered collection of handlers sharing one function type.
// Handlers keep the order they were added in, and removal shifts later handlers down so positions stay dense.
//
// Removal is copy-on-write: the backing array is rebuilt rather than edited, so a snapshot taken before a removal still sees the handlers that were present when it was taken.
// That property is what lets a dispatch pass survive handlers mutating the set mid-pass.
//
// A HandlerSet is not safe for concurrent use. It is owned by a single [Signal].
type HandlerSet[F any] struct {
	fns []F
}

// Add appends fn and returns its position.
func (h *HandlerSet[F]) Add(fn F) int {
	h.fns = append(h.fns, fn)
	return len(h.fns) - 1
}

// RemoveAt removes the handler at position pos, shifting every later handler down one position.
// Positions out of range panic, callers are expected to hold a valid position from [HandlerSet.Add].
func (h *HandlerSet[F]) RemoveAt(pos int) {
	next := make([]F, 0, len(h.fns)-1)
	next = append(next, h.fns[:pos]...)
	next = append(next, h.fns[pos+1:]...)
	h.fns = next
}

// Len returns the number of handlers.
func (h *HandlerSet[F]) Len() int {
	return len(h.fns)
}

// At returns the handler at position pos.
func (h *HandlerSet[F]) At(pos int) F {
	return h.fns[pos]
}

// Snapshot returns the ordered handlers as of this call.
// Later Add or RemoveAt calls don't affect the returned slice. Treat it as read-only.
func (h *HandlerSet[F]) Snapshot() []F {
	return h.fns
}

// Each calls visit for every handler in order, iterating a snapshot taken before the first call.
// Handlers added or removed by visit take effect for the next iteration, not this one.
func (h *HandlerSet[F]) Each(visit func(F)) {
	for _, fn := range h.fns {
		visit(fn)
	}
}

// clear drops every handler reference.
func (h *HandlerSet[F]) clear() {
	h.fns = nil
}
