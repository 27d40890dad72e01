package signal

import (
	"cmp"
	"fmt"
)

// Key identifies one attached handler on one [Signal].
// Keys are only issued by a signal's attach operations; the zero Key is inert and never identifies a live handler.
// Keys are comparable and totally ordered, so they can index maps or sort registration records.
type Key struct {
	signalID uint32
	seq      uint32
}

// SignalID returns the ID of the signal that issued this key, or 0 for the zero Key.
func (k Key) SignalID() uint32 {
	return k.signalID
}

// Seq returns the per-signal attachment sequence number.
// Sequence numbers start at 1 and are never reused, so a key stays unique for the life of its signal even after removal.
func (k Key) Seq() uint32 {
	return k.seq
}

// IsActive reports whether the key could identify a handler. The zero Key is not active.
func (k Key) IsActive() bool {
	return k.seq > 0
}

// Compare orders keys by signal ID first and attachment sequence second, returning -1, 0, or 1 like [cmp.Compare].
func (k Key) Compare(other Key) int {
	if k.signalID != other.signalID {
		return cmp.Compare(k.signalID, other.signalID)
	}
	return cmp.Compare(k.seq, other.seq)
}

// Less reports whether k orders before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// String formats the key as "signalID/seq" for diagnostics.
func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.signalID, k.seq)
}
