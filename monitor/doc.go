/*
Package monitor provides data nodes that collect numeric observations and announce them over signals.

A [Node] accumulates values between resets and keeps running aggregates available: count, total, mean, min, max, and standard deviation.
Every node announces its activity over three signals, so observation and reaction stay decoupled from collection:

  - OnDatum fires for every recorded value.
  - OnLimit fires for values outside the configured range, after OnDatum.
  - OnReset fires before a reset clears anything, so handlers can archive the data that's about to go away.

Node signals are named after the node with a ".datum", ".limit", or ".reset" suffix, and any managers given to [NewNode] track all three.

A node's bookkeeping is safe for concurrent use, and handlers run on the recording goroutine outside the node's lock, so a handler can read the node's aggregates without deadlocking.
Attaching and removing handlers still follows the signal package's rules: those are single-goroutine operations.
*/
package monitor
