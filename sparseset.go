package sparseset

import (
	"fmt"
	"iter"
	"sort"

	"github.com/edwinsyarief/sparseset/internal/xassert"
)

// growthFactor is the geometric growth factor used when the packed array
// must grow to satisfy an Emplace that exceeds its reserved
// capacity. The request itself always wins when it is the larger value
// ("bump to request").
const growthFactor = 1.5

// SparseSet maps Entity identifiers to dense positions in a packed array.
// It owns a paged sparse index (pageTable) used to discover or record an
// entity's packed position in near-constant time, and the packed array
// itself, which holds live entities in insertion order.
//
// The zero value is not ready for use; construct with New or NewWithHooks.
type SparseSet struct {
	sparse   pageTable
	packed   []Entity
	count    int
	reserved int
	hooks    Hooks
}

// New creates an empty SparseSet with no hooks (NopHooks).
func New() *SparseSet {
	return &SparseSet{hooks: NopHooks{}}
}

// NewWithHooks creates an empty SparseSet that notifies h at the three
// extension points described by the Hooks interface. A nil h is treated
// as NopHooks.
func NewWithHooks(h Hooks) *SparseSet {
	if h == nil {
		h = NopHooks{}
	}
	return &SparseSet{hooks: h}
}

// resizePacked reallocates the packed array to hold exactly req elements,
// preserving as many existing elements as fit.
func (s *SparseSet) resizePacked(req int) {
	var mem []Entity
	if req > 0 {
		mem = make([]Entity, req)
	}
	sz := req
	if s.count < sz {
		sz = s.count
	}
	if s.reserved > 0 {
		copy(mem, s.packed[:sz])
	}
	s.packed = mem
	s.reserved = req
	s.count = sz
}

// growIfRequired grows packed so that reserved >= req, using the
// geometric growth factor bumped up to req when req is larger.
func (s *SparseSet) growIfRequired(req int) {
	if s.reserved < req {
		sz := int(float64(s.count) * growthFactor)
		if sz < req {
			sz = req
		}
		s.resizePacked(sz)
	}
}

// Reserve grows packed to exactly capacity if capacity exceeds the
// current Capacity. It never shrinks.
func (s *SparseSet) Reserve(capacity int) {
	if capacity > s.reserved {
		s.resizePacked(capacity)
	}
}

// Capacity returns the number of entities packed currently has storage
// for.
func (s *SparseSet) Capacity() int {
	return s.reserved
}

// ShrinkToFit shrinks packed's capacity down to Size. If the set is now
// empty, every sparse page is released too.
func (s *SparseSet) ShrinkToFit() {
	s.resizePacked(s.count)
	if s.count == 0 {
		s.sparse.reset()
	}
}

// Extent returns the size of the sparse index: the number of page slots
// allocated (whether populated or not) times PageSize.
func (s *SparseSet) Extent() int {
	return s.sparse.pages() * PageSize
}

// Size returns the number of live entities in the set.
func (s *SparseSet) Size() int {
	return s.count
}

// Empty reports whether Size is zero.
func (s *SparseSet) Empty() bool {
	return s.count == 0
}

// Data returns the packed array restricted to its live prefix. The
// returned slice shares storage with the set; mutating it bypasses the
// sparse index and will corrupt the set's invariant.
func (s *SparseSet) Data() []Entity {
	return s.packed[:s.count]
}

// Contains reports whether e is live in the set.
func (s *SparseSet) Contains(e Entity) bool {
	cell, ok := s.sparse.peek(e)
	return ok && !cell.IsNull()
}

// IndexOf returns the packed position of e. e must be Contains-true;
// otherwise IndexOf panics.
func (s *SparseSet) IndexOf(e Entity) int {
	cell, ok := s.sparse.peek(e)
	if !ok || cell.IsNull() {
		panic(fmt.Sprintf("sparseset: set does not contain entity %v", e))
	}
	return int(cell.ToIntegral())
}

// At returns the entity at position pos, or Null if pos is out of range.
// Unlike Packed, At never panics.
func (s *SparseSet) At(pos int) Entity {
	if pos >= 0 && pos < s.count {
		return s.packed[pos]
	}
	return Null
}

// Packed returns the entity at position pos. pos must be < Size;
// otherwise Packed panics.
func (s *SparseSet) Packed(pos int) Entity {
	if pos >= s.count {
		panic(fmt.Sprintf("sparseset: position %d out of bounds (size %d)", pos, s.count))
	}
	return s.packed[pos]
}

// Emplace appends e to the set. e must not already be Contains-true;
// otherwise Emplace panics.
func (s *SparseSet) Emplace(e Entity) {
	if s.Contains(e) {
		panic(fmt.Sprintf("sparseset: set already contains entity %v", e))
	}
	s.growIfRequired(s.count + 1)
	*s.sparse.slot(e) = Compose(uint32(s.count), 0)
	s.packed[s.count] = e
	s.count++
}

// Insert appends every entity in entities, as if by Emplace for each,
// after a single capacity reservation sized to Size()+len(entities). No
// element of entities may already be Contains-true.
func (s *SparseSet) Insert(entities []Entity) {
	s.Reserve(s.count + len(entities))
	for _, e := range entities {
		if s.Contains(e) {
			panic(fmt.Sprintf("sparseset: set already contains entity %v", e))
		}
		*s.sparse.slot(e) = Compose(uint32(s.count), 0)
		s.packed[s.count] = e
		s.count++
	}
}

// Erase removes e from the set via swap-and-pop. e must be Contains-true;
// otherwise Erase panics. ud is forwarded unchanged to AboutToErase and
// SwapAndPop.
func (s *SparseSet) Erase(e Entity, ud any) {
	if !s.Contains(e) {
		panic(fmt.Sprintf("sparseset: set does not contain entity %v", e))
	}
	s.hooks.AboutToErase(e, ud)

	ref := s.sparse.slot(e)
	pos := int(ref.ToIntegral())

	s.count--
	other := s.packed[s.count]

	// Write the redirect before nullifying: when e is the tail entity,
	// other == e and otherRef == ref, so this assignment is a harmless
	// self-write that the following nullify then overwrites.
	otherRef := s.sparse.slot(other)
	*otherRef = *ref
	*ref = Null

	s.packed[pos] = other

	s.hooks.SwapAndPop(pos, ud)
}

// Remove erases e if it is Contains-true and reports whether it did.
// Unlike Erase, Remove never panics.
func (s *SparseSet) Remove(e Entity, ud any) bool {
	if !s.Contains(e) {
		return false
	}
	s.Erase(e, ud)
	return true
}

// Swap exchanges the packed positions of a and b. Both must be
// Contains-true; otherwise Swap panics. Fires SwapAt once.
func (s *SparseSet) Swap(a, b Entity) {
	from := s.IndexOf(a)
	to := s.IndexOf(b)
	s.swapPositions(from, to)
}

// swapPositions transposes packed[i] and packed[j] and their sparse
// cells, firing SwapAt(i, j).
func (s *SparseSet) swapPositions(i, j int) {
	ei, ej := s.packed[i], s.packed[j]
	*s.sparse.slot(ei), *s.sparse.slot(ej) = *s.sparse.slot(ej), *s.sparse.slot(ei)
	s.packed[i], s.packed[j] = s.packed[j], s.packed[i]
	s.hooks.SwapAt(i, j)

	s.assertInvariant(ei, j)
	s.assertInvariant(ej, i)
}

// reverseView presents packed[:length] in reverse (tail-first) order, so
// sorting it with a "less" comparator yields ascending cmp order under
// the set's tail-first iteration.
type reverseView struct {
	packed []Entity
	length int
	cmp    func(a, b Entity) bool
}

func (v reverseView) Len() int { return v.length }
func (v reverseView) Less(i, j int) bool {
	return v.cmp(v.packed[v.length-1-i], v.packed[v.length-1-j])
}
func (v reverseView) Swap(i, j int) {
	a, b := v.length-1-i, v.length-1-j
	v.packed[a], v.packed[b] = v.packed[b], v.packed[a]
}

// SortN sorts the first k packed entries so that tail-first iteration
// yields them in ascending cmp order and keeps the sparse index
// consistent. The packed array is reordered by the sort itself, without
// hooks; the cycle rebuild that follows then fires SwapAt once per step,
// and applying those transpositions in order to a parallel array gives it
// the same permutation (a step may report i == j). k must be <= Size.
func (s *SparseSet) SortN(k int, cmp func(a, b Entity) bool) {
	if k > s.count {
		panic(fmt.Sprintf("sparseset: sort length %d exceeds size %d", k, s.count))
	}
	sort.Sort(reverseView{packed: s.packed, length: k, cmp: cmp})

	for pos := 0; pos < k; pos++ {
		curr := pos
		next := s.IndexOf(s.packed[curr])

		for curr != next {
			idx := s.IndexOf(s.packed[next])
			entt := s.packed[curr]

			s.hooks.SwapAt(next, idx)
			*s.sparse.slot(entt) = Compose(uint32(curr), 0)
			s.assertInvariant(entt, curr)

			curr = next
			next = idx
		}
	}
}

// Sort sorts the whole packed array; equivalent to SortN(Size(), cmp).
func (s *SparseSet) Sort(cmp func(a, b Entity) bool) {
	s.SortN(s.count, cmp)
}

// Respect reorders elements common to both this set and other so that
// they appear, inside this set, in the relative order other imposes.
// Elements not present in other drift to the low end of packed with no
// order guarantee among them. Preserves the documented edge case where
// the loop stops as soon as pos reaches 0, so it never repositions the
// element that ends up at packed position 0 itself.
func (s *SparseSet) Respect(other *SparseSet) {
	pos := s.count - 1

	for e := range other.All() {
		if pos <= 0 {
			break
		}
		if s.Contains(e) {
			if e != s.packed[pos] {
				s.Swap(s.packed[pos], e)
			}
			pos--
		}
	}
}

// Clear erases every element, one at a time, so hooks fire for each.
func (s *SparseSet) Clear(ud any) {
	for s.count > 0 {
		s.Erase(s.packed[s.count-1], ud)
	}
}

// Find returns an Iterator positioned at e and true if e is Contains-true,
// or a zero Iterator positioned at end() and false otherwise.
func (s *SparseSet) Find(e Entity) (Iterator, bool) {
	if !s.Contains(e) {
		return s.End(), false
	}
	return Iterator{packed: &s.packed, i: s.IndexOf(e) + 1}, true
}

// Begin returns an iterator to the tail of packed (the most recently
// inserted element still present). If the set is empty, Begin equals End.
func (s *SparseSet) Begin() Iterator {
	return Iterator{packed: &s.packed, i: s.count}
}

// End returns the past-the-end iterator. Dereferencing it panics.
func (s *SparseSet) End() Iterator {
	return Iterator{packed: &s.packed, i: 0}
}

// All returns a tail-first sequence over the live entities, matching the
// set's default begin()/end() iteration order.
func (s *SparseSet) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := s.count - 1; i >= 0; i-- {
			if !yield(s.packed[i]) {
				return
			}
		}
	}
}

// Reversed returns a storage-order sequence over the live entities,
// matching rbegin()/rend().
func (s *SparseSet) Reversed() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.packed[i]) {
				return
			}
		}
	}
}

// Take returns the set's storage by value and resets the receiver to the
// empty state (sparse, packed, count and reserved all zeroed), the Go
// analogue of a move constructor/assignment.
func (s *SparseSet) Take() SparseSet {
	taken := *s
	s.sparse = pageTable{}
	s.packed = nil
	s.count = 0
	s.reserved = 0
	return taken
}

// assertInvariant re-derives index(e) from the sparse cell and compares it
// to want; compiled away outside the sparseset_debug build tag.
func (s *SparseSet) assertInvariant(e Entity, want int) {
	xassert.Check(
		func() bool { return s.IndexOf(e) == want },
		func() string { return fmt.Sprintf("entity %v expected at position %d", e, want) },
	)
}
