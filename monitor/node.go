package monitor

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/signals/assert"
	"github.com/saylorsolutions/signals/iterx"
	"github.com/saylorsolutions/signals/logging"
	"github.com/saylorsolutions/signals/signal"
	"github.com/saylorsolutions/signals/syncx"
)

// Node collects numeric observations and announces each one over its signals.
// Construct nodes with [NewNode]; the zero value has no signals to announce over.
type Node[T iterx.Number] struct {
	mux     sync.Mutex
	name    string
	values  []T
	lo, hi  T
	limited bool
	resets  int
	onDatum *signal.Signal[func(T)]
	onLimit *signal.Signal[func(T)]
	onReset *signal.Signal[func()]
	log     zerolog.Logger
}

// NewNode creates a Node and registers its three signals with each given manager.
func NewNode[T iterx.Number](name string, managers ...*signal.Manager) *Node[T] {
	return &Node[T]{
		name:    name,
		onDatum: signal.New[func(T)](name+".datum", managers...),
		onLimit: signal.New[func(T)](name+".limit", managers...),
		onReset: signal.New[func()](name+".reset", managers...),
		log:     logging.Logger("monitor").With().Str("node", name).Logger(),
	}
}

// Name returns the node's name, which prefixes its signal names.
func (n *Node[T]) Name() string {
	return n.name
}

// OnDatum returns the signal fired with every recorded value.
func (n *Node[T]) OnDatum() *signal.Signal[func(T)] {
	return n.onDatum
}

// OnLimit returns the signal fired with every recorded value outside the configured limits.
func (n *Node[T]) OnLimit() *signal.Signal[func(T)] {
	return n.onLimit
}

// OnReset returns the signal fired at the start of [Node.Reset], before any data is cleared.
func (n *Node[T]) OnReset() *signal.Signal[func()] {
	return n.onReset
}

// SetLimits configures the inclusive range of expected values.
// Values recorded outside it fire [Node.OnLimit]. Limits only apply to values recorded after the call.
func (n *Node[T]) SetLimits(lo, hi T) {
	assert.True("lo is not greater than hi", lo <= hi)
	syncx.LockFunc(&n.mux, func() {
		n.lo, n.hi = lo, hi
		n.limited = true
	})
}

// ClearLimits removes the configured range, so no value fires [Node.OnLimit].
func (n *Node[T]) ClearLimits() {
	syncx.LockFunc(&n.mux, func() {
		n.limited = false
	})
}

// Limits returns the configured range, and whether one is configured at all.
func (n *Node[T]) Limits() (lo, hi T, ok bool) {
	n.mux.Lock()
	defer n.mux.Unlock()
	return n.lo, n.hi, n.limited
}

// AddDatum records one value and fires [Node.OnDatum] with it, then [Node.OnLimit] if it falls outside the configured range.
func (n *Node[T]) AddDatum(val T) {
	breach := syncx.LockFuncT(&n.mux, func() bool {
		n.values = append(n.values, val)
		return n.limited && (val < n.lo || val > n.hi)
	})
	signal.Dispatch1(n.onDatum, val)
	if breach {
		n.log.Debug().Any("value", val).Msg("Value outside configured limits")
		signal.Dispatch1(n.onLimit, val)
	}
}

// Add records each value in order through [Node.AddDatum].
func (n *Node[T]) Add(vals ...T) {
	for _, val := range vals {
		n.AddDatum(val)
	}
}

// Reset fires [Node.OnReset], then clears the collected values.
// Handlers see the node as it was, so they can archive or summarize before the data disappears.
func (n *Node[T]) Reset() {
	signal.Dispatch0(n.onReset)
	syncx.LockFunc(&n.mux, func() {
		n.values = nil
		n.resets++
	})
	n.log.Debug().Msg("Node reset")
}

// Resets returns how many times [Node.Reset] has completed.
func (n *Node[T]) Resets() int {
	return syncx.LockFuncT(&n.mux, func() int {
		return n.resets
	})
}

// Values returns a copy of the values recorded since the last reset, in recording order.
func (n *Node[T]) Values() []T {
	return syncx.LockFuncT(&n.mux, func() []T {
		return slices.Clone(n.values)
	})
}

// Count returns the number of values recorded since the last reset.
func (n *Node[T]) Count() int {
	return syncx.LockFuncT(&n.mux, func() int {
		return len(n.values)
	})
}

// Total returns the sum of the recorded values.
func (n *Node[T]) Total() float64 {
	return iterx.Sum(iterx.SelectAll(n.Values()))
}

// Mean returns the mean of the recorded values, or 0 when nothing has been recorded.
func (n *Node[T]) Mean() float64 {
	vals := n.Values()
	if len(vals) == 0 {
		return 0
	}
	return iterx.Average(iterx.SelectAll(vals))
}

// Min returns the smallest recorded value, or the zero value when nothing has been recorded.
func (n *Node[T]) Min() T {
	return iterx.Min(iterx.SelectAll(n.Values()))
}

// Max returns the largest recorded value, or the zero value when nothing has been recorded.
func (n *Node[T]) Max() T {
	return iterx.Max(iterx.SelectAll(n.Values()))
}

// StdDev returns the population standard deviation of the recorded values, or 0 when nothing has been recorded.
func (n *Node[T]) StdDev() float64 {
	vals := n.Values()
	if len(vals) == 0 {
		return 0
	}
	return iterx.StdDev(iterx.SelectAll(vals))
}

// Close closes the node's three signals, releasing their handlers and notifying any managers tracking them.
func (n *Node[T]) Close() {
	n.onDatum.Close()
	n.onLimit.Close()
	n.onReset.Close()
}
