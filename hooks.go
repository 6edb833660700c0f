package sparseset

// Hooks is the notification interface a sparse set invokes at three
// defined points during mutation, so a derived component storage can keep
// a parallel array in lockstep with the packed array. A SparseSet
// constructed without an explicit Hooks value uses NopHooks, which costs
// nothing.
type Hooks interface {
	// AboutToErase is called exactly once per erased entity, immediately
	// before the swap-and-pop. The entity is still resident and queryable.
	AboutToErase(e Entity, ud any)

	// SwapAndPop is called exactly once per erased entity, immediately
	// after the swap-and-pop. pos is the packed position the moved-in
	// replacement now occupies (the former tail, unless the erased entity
	// was itself the tail, in which case the slot is now empty).
	SwapAndPop(pos int, ud any)

	// SwapAt is called whenever Swap transposes positions i and j in the
	// packed array, and once per step of SortN's cycle rebuild, where the
	// calls in order describe the permutation the sort applied to packed.
	SwapAt(i, j int)
}

// NopHooks is a zero-cost Hooks implementation that does nothing. It is
// the default for a SparseSet created with New.
type NopHooks struct{}

// AboutToErase does nothing.
func (NopHooks) AboutToErase(Entity, any) {}

// SwapAndPop does nothing.
func (NopHooks) SwapAndPop(int, any) {}

// SwapAt does nothing.
func (NopHooks) SwapAt(int, int) {}
