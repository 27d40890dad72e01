/*
Package signals is the root of a typed event-dispatch library.

The interesting parts live in the sub-packages:

  - [github.com/saylorsolutions/signals/signal] is the core: named dispatch channels with ordered handlers, stable subscription keys, and both compile-time-typed and runtime-verified trigger paths.
  - [github.com/saylorsolutions/signals/typedesc] provides the runtime type identities and function signatures the verified path is built on, plus a process-wide naming registry for diagnostics.
  - [github.com/saylorsolutions/signals/monitor] collects numeric observations and announces them over signals.

The remaining packages are supporting infrastructure: assertions that compile out ('noassert'), logging setup, environment helpers, a slice iterator with numeric aggregates, and small set and locking utilities.
A working end-to-end example lives in cmd/sigdemo.
*/
package signals
