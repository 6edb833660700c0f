package sparseset_test

import (
	"testing"

	"github.com/edwinsyarief/sparseset"
	"github.com/stretchr/testify/assert"
)

func TestComposeIndexVersion(t *testing.T) {
	e := sparseset.Compose(42, 7)
	assert.Equal(t, uint32(42), e.Index())
	assert.Equal(t, uint32(7), e.Version())
}

func TestComposeMasksOverflow(t *testing.T) {
	e := sparseset.Compose(1<<sparseset.IndexBits, 1<<sparseset.VersionBits)
	assert.Equal(t, uint32(0), e.Index())
	assert.Equal(t, uint32(0), e.Version())
}

func TestNullSentinel(t *testing.T) {
	assert.True(t, sparseset.Entity(0).IsNull() == false)
	assert.True(t, sparseset.Entity(sparseset.EntityMask).IsNull())
	assert.True(t, sparseset.Null.IsNull())
	assert.True(t, sparseset.Null == sparseset.Null)

	// Any entity whose index bits are all ones is null, regardless of version.
	withVersion := sparseset.Compose(uint32(sparseset.EntityMask), 9)
	assert.True(t, withVersion.IsNull())
}

func TestTombstoneSentinel(t *testing.T) {
	assert.False(t, sparseset.Entity(0).IsTombstone())
	assert.True(t, sparseset.Tombstone.IsTombstone())
	assert.True(t, sparseset.Tombstone == sparseset.Tombstone)

	// Any entity whose version bits are all ones is a tombstone, regardless
	// of index.
	withIndex := sparseset.Compose(123, uint32(sparseset.Tombstone.Version()))
	assert.True(t, withIndex.IsTombstone())
}

func TestAllBitsSetIsBothSentinel(t *testing.T) {
	allOnes := sparseset.Entity(^uint32(0))
	assert.True(t, allOnes.IsNull())
	assert.True(t, allOnes.IsTombstone())
}

func TestValid(t *testing.T) {
	assert.True(t, sparseset.Compose(1, 1).Valid())
	assert.False(t, sparseset.Null.Valid())
	assert.False(t, sparseset.Tombstone.Valid())
}

func TestToIntegralRoundTrip(t *testing.T) {
	e := sparseset.Compose(100, 3)
	raw := e.ToIntegral()
	assert.Equal(t, e, sparseset.Entity(raw))
}
