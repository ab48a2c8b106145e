package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolEntry struct{ name string }

func TestPoolGetOrAdd(t *testing.T) {
	p := NewPool[poolEntry]()
	assert.Nil(t, p.GetByKey(1))
	assert.Equal(t, -1, p.Index(1))

	a, created := p.GetOrAdd(1, 0)
	require.True(t, created)
	a.name = "a"

	again, created := p.GetOrAdd(1, 5)
	assert.False(t, created)
	assert.Same(t, a, again)
	assert.Equal(t, "a", p.GetByKey(1).name)
	assert.Equal(t, 1, p.Len())
}

func TestPoolValuesKeepTheirAddress(t *testing.T) {
	p := NewPool[poolEntry]()
	first, _ := p.GetOrAdd(1, 0)
	for id := ID(2); id < 200; id++ {
		p.GetOrAdd(id, 0)
	}
	assert.Same(t, first, p.GetByKey(1))
	assert.Same(t, first, p.GetByIndex(p.Index(1)))
}

func TestPoolRemoveReusesSlots(t *testing.T) {
	p := NewPool[poolEntry]()
	p.GetOrAdd(1, 0)
	p.GetOrAdd(2, 0)
	p.GetOrAdd(3, 0)

	p.Remove(1)
	p.Remove(3)
	p.Remove(42)
	assert.Equal(t, 1, p.Len())
	assert.Nil(t, p.GetByIndex(0))
	assert.Nil(t, p.GetByIndex(99))

	// The most recently freed slot is handed out first.
	p.GetOrAdd(4, 0)
	assert.Equal(t, 2, p.Index(4))
	p.GetOrAdd(5, 0)
	assert.Equal(t, 0, p.Index(5))
	p.GetOrAdd(6, 0)
	assert.Equal(t, 3, p.Index(6))
}

func TestPoolCollect(t *testing.T) {
	p := NewPool[poolEntry]()
	p.GetOrAdd(1, 0)
	p.GetOrAdd(2, 0)
	p.GetOrAdd(3, 0)
	p.Touch(2, 8)
	p.GetOrAdd(3, 10)

	var evicted []ID
	removed := p.Collect(10, 5, func(id ID, _ *poolEntry) { evicted = append(evicted, id) })
	assert.Equal(t, 1, removed)
	assert.Equal(t, []ID{1}, evicted)
	assert.Nil(t, p.GetByKey(1))

	// An entry exactly maxAge frames old survives.
	assert.Zero(t, p.Collect(13, 5, nil))
	assert.Equal(t, 1, p.Collect(14, 5, nil))
	assert.Equal(t, 1, p.Len())
}

func TestPoolEachAndClear(t *testing.T) {
	p := NewPool[poolEntry]()
	for id := ID(1); id <= 3; id++ {
		v, _ := p.GetOrAdd(id, 0)
		v.name = string(rune('a' + id - 1))
	}
	p.Remove(2)

	var names []string
	p.Each(func(_ ID, v *poolEntry) { names = append(names, v.name) })
	assert.Equal(t, []string{"a", "c"}, names)

	p.Clear()
	assert.Zero(t, p.Len())
	assert.Nil(t, p.GetByKey(1))
	v, created := p.GetOrAdd(1, 0)
	assert.True(t, created)
	assert.Empty(t, v.name)
}
