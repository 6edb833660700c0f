// Package sparseset provides the paged sparse-set core of an
// Entity-Component-System runtime: an entity identifier scheme with
// generation versioning, and a sparse set that maps identifiers to dense
// positions in a packed array.
package sparseset

import "fmt"

// Entity is an opaque identifier packing a 20-bit index and a 12-bit
// version into a single 32-bit word. The low bits are the index; the high
// bits are the version (generation counter).
type Entity uint32

const (
	// IndexBits is the width, in bits, of the index field.
	IndexBits = 20
	// VersionBits is the width, in bits, of the version field.
	VersionBits = 32 - IndexBits

	// EntityShift is the number of bits the version field is shifted left by.
	EntityShift = IndexBits

	// EntityMask masks the index bits of an Entity.
	EntityMask Entity = (1 << IndexBits) - 1
	// VersionMask masks the version bits of an Entity, already shifted into
	// position (i.e. it is directly comparable against a raw Entity value).
	VersionMask Entity = ((1 << VersionBits) - 1) << EntityShift
)

// Null is the sentinel meaning "no slot". Equality against Null compares
// only the index bits: any Entity whose index bits are all ones is Null,
// regardless of its version.
const Null Entity = EntityMask

// Tombstone is the sentinel meaning "slot was valid but its generation is
// exhausted". Equality against Tombstone compares only the version bits.
const Tombstone Entity = VersionMask

// Compose builds an Entity from an index and a version. Bits of index
// beyond IndexBits and of version beyond VersionBits are discarded.
func Compose(index, version uint32) Entity {
	return Entity(version)<<EntityShift | Entity(index)&EntityMask
}

// Index returns the low IndexBits of e.
func (e Entity) Index() uint32 {
	return uint32(e & EntityMask)
}

// Version returns the high VersionBits of e.
func (e Entity) Version() uint32 {
	return uint32((e & VersionMask) >> EntityShift)
}

// ToIntegral returns the raw bit pattern of e.
func (e Entity) ToIntegral() uint32 {
	return uint32(e)
}

// IsNull reports whether e's index bits are all set, i.e. e == Null under
// index-only comparison.
func (e Entity) IsNull() bool {
	return e&EntityMask == EntityMask
}

// IsTombstone reports whether e's version bits are all set, i.e.
// e == Tombstone under version-only comparison.
func (e Entity) IsTombstone() bool {
	return e&VersionMask == VersionMask
}

// Valid reports whether e is neither Null nor a recycled slot whose
// version has been exhausted (Tombstone-equal).
func (e Entity) Valid() bool {
	return !e.IsNull() && !e.IsTombstone()
}

// String renders e as index/version for debugging.
func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d/%d)", e.Index(), e.Version())
}
