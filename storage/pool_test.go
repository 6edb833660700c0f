package storage_test

import (
	"testing"

	"github.com/edwinsyarief/sparseset"
	"github.com/edwinsyarief/sparseset/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float64
}

func TestPoolEmplaceAndGet(t *testing.T) {
	p := storage.New[position]()
	e := sparseset.Compose(1, 0)

	got := p.Emplace(e, position{X: 1, Y: 2})
	assert.Equal(t, position{X: 1, Y: 2}, *got)

	assert.True(t, p.Contains(e))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, position{X: 1, Y: 2}, *p.Get(e))
}

func TestPoolEmplaceManyKeepsAlignment(t *testing.T) {
	p := storage.New[position]()
	entities := make([]sparseset.Entity, 10)
	for i := range entities {
		entities[i] = sparseset.Compose(uint32(i), 0)
		p.Emplace(entities[i], position{X: float64(i)})
	}

	for i, e := range entities {
		require.True(t, p.Contains(e))
		assert.Equal(t, float64(i), p.Get(e).X)
	}
}

func TestPoolRemoveSwapsLastComponentIntoHole(t *testing.T) {
	p := storage.New[position]()
	e1 := sparseset.Compose(1, 0)
	e2 := sparseset.Compose(2, 0)
	e3 := sparseset.Compose(3, 0)
	p.Emplace(e1, position{X: 1})
	p.Emplace(e2, position{X: 2})
	p.Emplace(e3, position{X: 3})

	ok := p.Remove(e2)
	require.True(t, ok)

	assert.False(t, p.Contains(e2))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, float64(3), p.Get(e3).X)
	assert.Equal(t, float64(1), p.Get(e1).X)
}

func TestPoolRemoveAbsentReturnsFalse(t *testing.T) {
	p := storage.New[position]()
	assert.False(t, p.Remove(sparseset.Compose(1, 0)))
}

func TestPoolAllVisitsEveryComponent(t *testing.T) {
	p := storage.New[position]()
	want := map[sparseset.Entity]position{
		sparseset.Compose(1, 0): {X: 1},
		sparseset.Compose(2, 0): {X: 2},
		sparseset.Compose(3, 0): {X: 3},
	}
	for e, c := range want {
		p.Emplace(e, c)
	}

	seen := map[sparseset.Entity]position{}
	for e, c := range p.All() {
		seen[e] = *c
	}

	assert.Equal(t, want, seen)
}

func TestPoolStringReportsSize(t *testing.T) {
	p := storage.New[position]()
	p.Emplace(sparseset.Compose(1, 0), position{})
	assert.Contains(t, p.String(), "1")
}
