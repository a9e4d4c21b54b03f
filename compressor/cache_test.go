package compressor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_UInt_ReturnsMemoizedInstance(t *testing.T) {
	c := NewCache()

	a := c.UInt(0, 1000)
	b := c.UInt(0, 1000)
	assert.Same(t, a, b)
}

func TestCache_UInt_DistinctRangesDistinctInstances(t *testing.T) {
	c := NewCache()

	a := c.UInt(0, 1000)
	b := c.UInt(0, 2000)
	assert.NotSame(t, a, b)
	assert.Equal(t, uint64(0), a.Min())
	assert.Equal(t, uint64(2000), b.Max())
}

func TestCache_Int_ReturnsMemoizedInstance(t *testing.T) {
	c := NewCache()

	a := c.Int(-500, 500)
	b := c.Int(-500, 500)
	assert.Same(t, a, b)
}

func TestCachedUInt_UsesDefaultCache(t *testing.T) {
	a := CachedUInt(1, 2)
	b := CachedUInt(1, 2)
	assert.Same(t, a, b)
}

func TestCachedInt_UsesDefaultCache(t *testing.T) {
	a := CachedInt(-1, 1)
	b := CachedInt(-1, 1)
	assert.Same(t, a, b)
}

func TestCache_Float_ReturnsMemoizedInstance(t *testing.T) {
	c := NewCache()

	a := c.Float(-1000, 1000, 26)
	b := c.Float(-1000, 1000, 26)
	assert.Same(t, a, b)
}

func TestCache_Float_DistinctBitsDistinctInstances(t *testing.T) {
	c := NewCache()

	a := c.Float(-1000, 1000, 26)
	b := c.Float(-1000, 1000, 16)
	assert.NotSame(t, a, b)
	assert.Equal(t, 26, a.Bits())
	assert.Equal(t, 16, b.Bits())
}

func TestCache_Double_ReturnsMemoizedInstance(t *testing.T) {
	c := NewCache()

	a := c.Double(-1000, 1000, 26)
	b := c.Double(-1000, 1000, 26)
	assert.Same(t, a, b)
}

func TestCachedFloat_UsesDefaultCache(t *testing.T) {
	a := CachedFloat(0, 100, 10)
	b := CachedFloat(0, 100, 10)
	assert.Same(t, a, b)
}

func TestCachedDouble_UsesDefaultCache(t *testing.T) {
	a := CachedDouble(0, 100, 10)
	b := CachedDouble(0, 100, 10)
	assert.Same(t, a, b)
}

func TestCache_CollisionCount_TracksDistinctRegistrations(t *testing.T) {
	c := NewCache()
	assert.Equal(t, 0, c.CollisionCount())
	assert.False(t, c.HasCollision())

	c.UInt(0, 10)
	c.UInt(0, 20)
	c.Int(-5, 5)
	c.Float(-1000, 1000, 26)
	c.Double(-1000, 1000, 26)

	// Cache hits on an already-registered range must not grow the count.
	c.UInt(0, 10)

	assert.Equal(t, 5, c.CollisionCount())
}
