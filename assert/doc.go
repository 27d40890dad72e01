/*
Package assert provides runtime assertions for contract violations that should fail loudly during development.

The dispatch packages in this module treat misuse - triggering with the wrong types, removing a key that was never issued, matching an action against the wrong signal - as programmer errors.
Each of those paths both asserts and returns a sentinel error, so the same violation panics in a debug build and surfaces as an inspectable error in production.

Build with the 'noassert' tag to compile the panics out and keep only the error returns.
[Disable] and [Enable] offer the same switch at runtime, which is mainly useful in tests that exercise the error returns.

[Collector] is the other half of the package: it gathers several related errors into one, which the type verification code uses to report every offending argument position at once.
*/
package assert
