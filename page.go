package sparseset

// PageSize is the number of entities stored per sparse page. Must be a
// power of two; 4096 is the reference value used throughout the ECS
// literature this container is modelled on.
const PageSize = 4096

// page is a fixed-size block of sparse cells. A page is either absent (nil)
// or fully initialised to Null in every slot.
type page []Entity

func newPage() page {
	p := make(page, PageSize)
	for i := range p {
		p[i] = Null
	}
	return p
}

// pageOf returns the page index for an entity's index bits.
func pageOf(e Entity) int {
	return int(e.Index() / PageSize)
}

// offsetOf returns the in-page offset for an entity's index bits.
func offsetOf(e Entity) int {
	return int(e.Index() % PageSize)
}

// pageTable is the array-of-pages bucket array. It only grows; pages are
// allocated lazily on first touch and never freed except by a full
// ShrinkToFit on an empty owner.
type pageTable struct {
	buckets []page
}

// ensure makes sure page p exists and is allocated, growing the bucket
// array if necessary.
func (t *pageTable) ensure(p int) {
	if p >= len(t.buckets) {
		grown := make([]page, p+1)
		copy(grown, t.buckets)
		t.buckets = grown
	}
	if t.buckets[p] == nil {
		t.buckets[p] = newPage()
	}
}

// slot returns a pointer to the sparse cell for e, allocating its page if
// necessary.
func (t *pageTable) slot(e Entity) *Entity {
	p := pageOf(e)
	t.ensure(p)
	return &t.buckets[p][offsetOf(e)]
}

// peek returns the current sparse cell for e without allocating a page.
// The second return value is false if e's page has never been touched.
func (t *pageTable) peek(e Entity) (Entity, bool) {
	p := pageOf(e)
	if p >= len(t.buckets) || t.buckets[p] == nil {
		return Null, false
	}
	return t.buckets[p][offsetOf(e)], true
}

// pages returns the number of page slots in the bucket array, allocated
// or not. extent() == pages() * PageSize.
func (t *pageTable) pages() int {
	return len(t.buckets)
}

// reset clears the bucket array entirely, releasing every page.
func (t *pageTable) reset() {
	t.buckets = nil
}
