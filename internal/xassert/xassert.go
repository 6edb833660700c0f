// Package xassert provides invariant checks that only run when the
// sparseset_debug build tag is set. Cheap precondition checks stay in the
// normal control flow and always panic, but the extra O(1) invariant
// re-derivations this package guards are wasteful to pay for outside
// debug builds.
package xassert

// Check invokes cond and panics with msg if it reports false. It is a
// no-op (cond is never called) when built without the sparseset_debug
// tag — see xassert_release.go and xassert_debug.go.
func Check(cond func() bool, msg func() string) {
	checkImpl(cond, msg)
}
