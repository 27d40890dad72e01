package signal

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/signals/assert"
	"github.com/saylorsolutions/signals/logging"
	"github.com/saylorsolutions/signals/structures/set"
	"github.com/saylorsolutions/signals/syncx"
)

// Manager tracks live signals so they can be found by name and torn down as a group.
//
// Signals register themselves by listing managers at [New], and a closing signal tells its managers to forget it, so tracking never outlives the signal.
// Unlike a single signal, a Manager is safe for concurrent use. It only guards its own bookkeeping; triggering a tracked signal still follows the signal's own concurrency rules.
type Manager struct {
	mux     sync.RWMutex
	tracked set.Set[AnySignal]
	log     zerolog.Logger
}

// NewManager creates an empty [Manager].
func NewManager() *Manager {
	return &Manager{
		tracked: set.New[AnySignal](),
		log:     logging.Logger("manager"),
	}
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide [Manager], creating it on first use.
// It suits programs with one natural signal namespace; anything more isolated should create its own managers.
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

// NotifyConstruct starts tracking s. Signals created with this manager call it themselves, so most callers never need to.
// A nil or already-tracked signal is ignored.
func (m *Manager) NotifyConstruct(s AnySignal) {
	if s == nil {
		return
	}
	syncx.LockFunc(&m.mux, func() {
		m.tracked = m.tracked.Add(s)
	})
	m.log.Debug().Str("signal", s.Name()).Uint32("id", s.ID()).Msg("Tracking signal")
}

// NotifyDestruct stops tracking s. Closing signals call it themselves on every registered manager.
// A nil or untracked signal is ignored.
func (m *Manager) NotifyDestruct(s AnySignal) {
	if s == nil {
		return
	}
	syncx.LockFunc(&m.mux, func() {
		m.tracked = m.tracked.Remove(s)
	})
	m.log.Debug().Str("signal", s.Name()).Uint32("id", s.ID()).Msg("Forgetting signal")
}

// Has reports whether s is currently tracked.
func (m *Manager) Has(s AnySignal) bool {
	if s == nil {
		return false
	}
	return syncx.RLockFuncT(&m.mux, func() bool {
		return m.tracked.Has(s)
	})
}

// Count returns the number of tracked signals.
func (m *Manager) Count() int {
	return syncx.RLockFuncT(&m.mux, func() int {
		return len(m.tracked)
	})
}

// Signals returns the tracked signals in construction order, oldest first.
func (m *Manager) Signals() []AnySignal {
	signals := syncx.RLockFuncT(&m.mux, func() []AnySignal {
		return m.tracked.Slice()
	})
	slices.SortFunc(signals, func(a, b AnySignal) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return signals
}

// Find returns the oldest tracked signal with the given name.
func (m *Manager) Find(name string) (AnySignal, bool) {
	for _, s := range m.Signals() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the distinct names of tracked signals in construction order.
func (m *Manager) Names() []string {
	var (
		names []string
		seen  = set.New[string]()
	)
	for _, s := range m.Signals() {
		if seen.Has(s.Name()) {
			continue
		}
		seen = seen.Add(s.Name())
		names = append(names, s.Name())
	}
	return names
}

// Close tears down s through its own close path, with this manager driving the teardown.
// Other managers tracking s are notified as usual. Closing a signal this manager doesn't track fails with [ErrNotTracked].
func (m *Manager) Close(s AnySignal) error {
	tracked := s != nil && syncx.LockFuncT(&m.mux, func() bool {
		if !m.tracked.Has(s) {
			return false
		}
		m.tracked = m.tracked.Remove(s)
		return true
	})
	assert.True("signal is tracked by this manager", tracked)
	if !tracked {
		if s == nil {
			return fmt.Errorf("%w: nil signal", ErrNotTracked)
		}
		return fmt.Errorf("%w: signal %q", ErrNotTracked, s.Name())
	}
	s.closeVia(m)
	return nil
}

// CloseAll tears down every tracked signal in construction order and leaves the manager empty.
func (m *Manager) CloseAll() {
	signals := syncx.LockFuncT(&m.mux, func() []AnySignal {
		out := m.tracked.Slice()
		m.tracked = set.New[AnySignal]()
		return out
	})
	slices.SortFunc(signals, func(a, b AnySignal) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	for _, s := range signals {
		s.closeVia(m)
	}
	m.log.Debug().Int("closed", len(signals)).Msg("Closed all tracked signals")
}
