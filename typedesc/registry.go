package typedesc

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/saylorsolutions/signals/syncx"
)

// ErrNameTaken indicates that [SetName] was called with a name already bound to a different type.
var ErrNameTaken = errors.New("name already registered")

// Entry is one row in a registry snapshot from [Entries].
type Entry struct {
	Desc Descriptor
	ID   uint32
	Name string
}

type registryState struct {
	mux    sync.RWMutex
	ids    map[Descriptor]uint32
	names  map[Descriptor]string
	byName map[string]Descriptor
	nextID uint32
}

var reg = &registryState{
	ids:    map[Descriptor]uint32{},
	names:  map[Descriptor]string{},
	byName: map[string]Descriptor{},
}

// intern must be called with the write lock held.
func (r *registryState) intern(d Descriptor) uint32 {
	if id, ok := r.ids[d]; ok {
		return id
	}
	r.nextID++
	r.ids[d] = r.nextID
	derived := d.t.String()
	if _, taken := r.byName[derived]; !taken {
		r.byName[derived] = d
	}
	return r.nextID
}

// ID interns d in the process-wide registry and returns its stable ID.
// IDs are assigned in first-seen order starting at 1. The none Descriptor is always 0.
func ID(d Descriptor) uint32 {
	if d.IsNone() {
		return 0
	}
	return syncx.LockFuncT(&reg.mux, func() uint32 {
		return reg.intern(d)
	})
}

// Name returns the readable name for d, interning it as a side effect.
// The name is derived from the type unless [SetName] bound one explicitly. The none Descriptor is named "none".
func Name(d Descriptor) string {
	if d.IsNone() {
		return "none"
	}
	return syncx.LockFuncT(&reg.mux, func() string {
		reg.intern(d)
		if name, ok := reg.names[d]; ok {
			return name
		}
		return d.t.String()
	})
}

// SetName binds an explicit name to d, replacing its derived name in [Name] output and [Lookup].
// Re-binding the same name to the same type is fine; binding a name held by a different type fails with [ErrNameTaken].
func SetName(d Descriptor, name string) error {
	if d.IsNone() {
		return errors.New("cannot name the none descriptor")
	}
	if name == "" {
		return errors.New("name must not be empty")
	}
	return syncx.LockFuncT(&reg.mux, func() error {
		reg.intern(d)
		if holder, taken := reg.byName[name]; taken && holder != d {
			return fmt.Errorf("%w: %q already names %s", ErrNameTaken, name, holder.t.String())
		}
		if prev, ok := reg.names[d]; ok && prev != name {
			delete(reg.byName, prev)
		}
		reg.names[d] = name
		reg.byName[name] = d
		return nil
	})
}

// Lookup resolves a name back to its Descriptor.
// Both derived names of interned types and names bound with [SetName] are known here.
func Lookup(name string) (Descriptor, bool) {
	reg.mux.RLock()
	defer reg.mux.RUnlock()
	d, ok := reg.byName[name]
	return d, ok
}

// Entries returns a snapshot of every interned type, ordered by ID.
func Entries() []Entry {
	entries := syncx.RLockFuncT(&reg.mux, func() []Entry {
		out := make([]Entry, 0, len(reg.ids))
		for d, id := range reg.ids {
			name, ok := reg.names[d]
			if !ok {
				name = d.t.String()
			}
			out = append(out, Entry{Desc: d, ID: id, Name: name})
		}
		return out
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return entries
}

// Count returns the number of interned types.
func Count() int {
	return syncx.RLockFuncT(&reg.mux, func() int {
		return len(reg.ids)
	})
}

// Reset clears the registry, forgetting every interned type, ID, and name.
// IDs handed out before a Reset say nothing about IDs handed out after, so this is mostly useful for isolating tests.
func Reset() {
	syncx.LockFunc(&reg.mux, func() {
		reg.ids = map[Descriptor]uint32{}
		reg.names = map[Descriptor]string{}
		reg.byName = map[string]Descriptor{}
		reg.nextID = 0
	})
}
