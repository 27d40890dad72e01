/*
Package signal provides typed, ordered dispatch of events to registered handlers.

A [Signal] is a named channel for handlers that all share one function type.
Triggering the signal invokes every handler in attachment order with the same arguments, and collects their results when the function type returns a value.
Each attachment yields a [Key] that identifies that handler for later [Signal.Remove] or [Signal.Priority] calls, no matter how the handler list shifts around it.

There are a few policies worth knowing up front:

  - Handlers run in attachment order, always. There is no priority parameter; order of attachment is the priority.
  - Keys from one signal strictly increase and are never reused, so a stale key can't silently remove the wrong handler.
  - The zero [Key] identifies nothing and is safely inert.
  - Handlers attached mid-trigger wait for the next trigger. Handlers removed mid-trigger still run to the end of the current one, because the list is snapshotted when the trigger starts.

# Typed and erased dispatch

Code that knows a signal's type at compile time should hold the *[Signal] directly and use [Signal.Attach] along with the Dispatch and Collect helpers ([Dispatch0] through [Dispatch5], [Collect0] through [Collect5]).
These are plain function calls with no reflection and no failure modes.

Code that only learns types at runtime works through [AnySignal], which every Signal implements.
The erased operations accept plain values and verify their [typedesc.Descriptor]s before anything runs: [AnySignal.Trigger] checks every argument against the declared parameters, and [AnySignal.AttachFunc] checks the handler's shape at the attach site.
Verification failures wrap [typedesc.ErrTypeMismatch] and report every offending position, not just the first.

Two relaxations make erased triggering practical. A *T argument satisfies a declared T parameter and is dereferenced for dispatch, and nil satisfies any parameter with a usable nil value.

# Adaptation

A handler doesn't have to care about every parameter a signal declares.
[AnySignal.AttachFunc] accepts handlers declaring any leading prefix of the signal's parameters, with the same return type, and wraps them to discard the surplus. A func() handler can watch any void signal.
Handlers with extra parameters are rejected at attach time; nothing waits until the first trigger to fail.

# Actions and managers

An [Action] names a callable and carries its signature, so handlers can live in collections and be matched against signals with [Signal.Matches] before attaching.
A [Manager] tracks live signals for lookup by name and group teardown with [Manager.CloseAll]. Signals list their managers at construction, and a closing signal tells every registered manager to forget it.

# Concurrency and failure

A Signal is single-goroutine state, exactly like a map. It does no internal locking; callers who share one across goroutines bring their own synchronization.
A [Manager] is the exception, since registries are naturally shared, its bookkeeping is safe for concurrent use.

Misuse is a programmer error and fails fast: by default assertion panics point at the offending call site, and builds with the 'noassert' tag return sentinel errors instead ([ErrSignatureMismatch], [ErrUnknownKey], [ErrNotTracked], [ErrClosed]).
Panics from handlers themselves are not recovered. They abort the remaining handlers and propagate to the trigger caller, which keeps a broken handler loud instead of quietly skipped.
*/
package signal
