// Package storage provides a minimal generic component pool that
// demonstrates wiring a derived storage to a sparseset.SparseSet through
// its three hooks, keeping a parallel component slice in lockstep with
// the set's packed array. It is not a registry: a Pool owns exactly one
// component slice and nothing else.
package storage

import (
	"fmt"

	"github.com/edwinsyarief/sparseset"
)

// Pool stores one T per entity it has been given a component for,
// indexed in lockstep with the packed positions of an internal
// SparseSet. Emplace and Remove both keep the two arrays aligned.
type Pool[T any] struct {
	set        *sparseset.SparseSet
	components []T
}

// New creates an empty Pool[T].
func New[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.set = sparseset.NewWithHooks(p)
	return p
}

// Len returns the number of entities currently holding a component.
func (p *Pool[T]) Len() int {
	return p.set.Size()
}

// Contains reports whether e currently holds a component.
func (p *Pool[T]) Contains(e sparseset.Entity) bool {
	return p.set.Contains(e)
}

// Emplace attaches component to e and returns a pointer to its storage
// slot. e must not already hold a component.
func (p *Pool[T]) Emplace(e sparseset.Entity, component T) *T {
	p.set.Emplace(e)
	p.components = extendSlice(p.components, p.set.Size()-len(p.components))
	pos := p.set.IndexOf(e)
	p.components[pos] = component
	return &p.components[pos]
}

// extendSlice extends s by n elements, reallocating with doubled
// capacity if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	newCap := 2 * cap(s)
	if newCap < newLen {
		newCap = newLen
	}
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}

// Get returns a pointer to e's component. e must currently hold one.
func (p *Pool[T]) Get(e sparseset.Entity) *T {
	pos := p.set.IndexOf(e)
	return &p.components[pos]
}

// Remove detaches e's component, if any, and reports whether it did.
func (p *Pool[T]) Remove(e sparseset.Entity) bool {
	return p.set.Remove(e, nil)
}

// All ranges over (entity, component pointer) pairs in the pool's
// tail-first iteration order.
func (p *Pool[T]) All() func(yield func(sparseset.Entity, *T) bool) {
	return func(yield func(sparseset.Entity, *T) bool) {
		for e := range p.set.All() {
			if !yield(e, p.Get(e)) {
				return
			}
		}
	}
}

// AboutToErase implements sparseset.Hooks. Components are plain values
// with no pre-erase notification need, so this is a no-op.
func (p *Pool[T]) AboutToErase(sparseset.Entity, any) {}

// SwapAndPop implements sparseset.Hooks: the component formerly at the
// tail has just been moved into pos by the owning set, so the parallel
// component slice is updated the same way, then truncated.
func (p *Pool[T]) SwapAndPop(pos int, _ any) {
	last := len(p.components) - 1
	if pos != last {
		p.components[pos] = p.components[last]
	}
	var zero T
	p.components[last] = zero
	p.components = p.components[:last]
}

// SwapAt implements sparseset.Hooks: transposes the two component slots
// to match the just-transposed packed positions.
func (p *Pool[T]) SwapAt(i, j int) {
	p.components[i], p.components[j] = p.components[j], p.components[i]
}

// String renders the pool's size for debugging.
func (p *Pool[T]) String() string {
	return fmt.Sprintf("Pool[%T](%d)", *new(T), p.set.Size())
}
