/*
Package typedesc provides comparable runtime type identities and the matching rules used by the dispatch packages.

A [Descriptor] identifies one Go type.
Descriptors are plain comparable values, so they work as map keys and compare with ==.
The zero Descriptor is "none", which is how a missing return type is modeled.

A [Signature] bundles the parameter and return descriptors of a handler function type.
It implements the two checks dispatch needs:
  - [Signature.VerifyArgs] for triggering through a type-erased surface, where each supplied argument must have the declared type, or be a pointer to it.
  - [Signature.PrefixOf] for attach-time adaptation, where a handler may declare a leading subset of a channel's parameters and ignore the rest.

Descriptors can be interned in a process-wide registry that assigns small stable IDs in first-seen order.
[Name] derives a readable name for diagnostics, [SetName] overrides it, and [Entries] snapshots the registry for docs or debugging.
The registry is concurrency safe; signals only hold descriptors, the registry owns the bookkeeping.
*/
package typedesc
