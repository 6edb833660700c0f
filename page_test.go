package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTablePeekAbsent(t *testing.T) {
	var t1 pageTable
	cell, ok := t1.peek(Compose(3, 0))
	assert.False(t, ok)
	assert.Equal(t, Null, cell)
}

func TestPageTableEnsureFillsNull(t *testing.T) {
	var t1 pageTable
	t1.ensure(0)
	require.Len(t, t1.buckets, 1)
	for _, cell := range t1.buckets[0] {
		assert.True(t, cell.IsNull())
	}
}

func TestPageTableSlotAllocatesPage(t *testing.T) {
	var t1 pageTable
	e := Compose(3+PageSize, 0) // forces page 1
	ptr := t1.slot(e)
	*ptr = Compose(5, 0)

	cell, ok := t1.peek(e)
	require.True(t, ok)
	assert.Equal(t, uint32(5), cell.ToIntegral())
	assert.Equal(t, 2, t1.pages())
}

func TestPageOfAndOffsetOf(t *testing.T) {
	e := Compose(3+PageSize, 0)
	assert.Equal(t, 1, pageOf(e))
	assert.Equal(t, 3, offsetOf(e))
}

func TestPageTableResetFreesPages(t *testing.T) {
	var t1 pageTable
	t1.ensure(2)
	require.Len(t, t1.buckets, 3)
	t1.reset()
	assert.Equal(t, 0, t1.pages())
}
