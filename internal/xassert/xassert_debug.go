//go:build sparseset_debug

package xassert

// checkImpl panics with msg() if cond() is false. Built only with the
// sparseset_debug tag.
func checkImpl(cond func() bool, msg func() string) {
	if !cond() {
		panic("sparseset: invariant violated: " + msg())
	}
}
