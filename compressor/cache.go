package compressor

import (
	"fmt"
	"math"
	"sync"

	"github.com/arloliu/bitstream/internal/collision"
	"github.com/arloliu/bitstream/internal/hash"
)

// kind bytes distinguish the four compressor shapes inside a shared cache key.
const (
	kindUInt   byte = 'u'
	kindInt    byte = 'i'
	kindFloat  byte = 'f'
	kindDouble byte = 'd'
)

// Cache is a memoizing constructor for range compressors, keyed by an
// xxHash64 of their (kind, min, max, bits) tuple. It exists purely to avoid
// reconstructing identical compressors for callers that redeclare the same
// bounded field shape on every encode call (e.g. a generated packet struct
// whose fields all share one declared range).
//
// A hash collision between two different parameter tuples is tolerated
// rather than treated as an error: the colliding lookup simply falls back to
// constructing a fresh, unregistered compressor, mirroring the collision
// tolerance in the source metric-name tracker. It never corrupts the wire
// format; it only forgoes the memoization for that one lookup.
//
// Registrations (not lookups) are additionally recorded in a
// collision.Tracker keyed by the same hash, so a caller can inspect
// Cache.HasCollision/CollisionCount, without that bookkeeping affecting
// correctness. A lookup that collides with an already-registered key of the
// same kind is not registered, so it is not recorded in the tracker.
type Cache struct {
	mu      sync.Mutex
	uints   map[uint64]*UIntCompressor
	ints    map[uint64]*IntCompressor
	floats  map[uint64]*FloatCompressor
	doubles map[uint64]*DoubleCompressor
	tracker *collision.Tracker
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{
		uints:   make(map[uint64]*UIntCompressor),
		ints:    make(map[uint64]*IntCompressor),
		floats:  make(map[uint64]*FloatCompressor),
		doubles: make(map[uint64]*DoubleCompressor),
		tracker: collision.NewTracker(),
	}
}

// HasCollision reports whether two registered compressor declarations have
// landed on the same cache key. A same-kind collision is served by an
// unregistered compressor and does not set this flag.
func (c *Cache) HasCollision() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tracker.HasCollision()
}

// CollisionCount returns the number of distinct compressor shapes this
// Cache has registered (collisions included).
func (c *Cache) CollisionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tracker.Count()
}

// UInt returns a memoized UIntCompressor for [min,max], constructing and
// registering one on first use.
func (c *Cache) UInt(min, max uint64) *UIntCompressor {
	key := hash.Tuple(kindUInt, min, max, 0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.uints[key]; ok {
		if existing.min == min && existing.max == max {
			return existing
		}
		// Hash collision between distinct ranges: don't register, just build.
		return NewUIntCompressor(min, max)
	}

	fresh := NewUIntCompressor(min, max)
	c.uints[key] = fresh
	_ = c.tracker.Track(fmt.Sprintf("uint[%d,%d]", min, max), key)

	return fresh
}

// Int returns a memoized IntCompressor for [min,max], constructing and
// registering one on first use.
func (c *Cache) Int(min, max int64) *IntCompressor {
	key := hash.Tuple(kindInt, uint64(min), uint64(max), 0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.ints[key]; ok {
		if existing.min == min && existing.max == max {
			return existing
		}
		return NewIntCompressor(min, max)
	}

	fresh := NewIntCompressor(min, max)
	c.ints[key] = fresh
	_ = c.tracker.Track(fmt.Sprintf("int[%d,%d]", min, max), key)

	return fresh
}

// Float returns a memoized FloatCompressor for [min,max] quantized into
// bitsCount bits, constructing and registering one on first use.
func (c *Cache) Float(min, max float64, bitsCount int) *FloatCompressor {
	key := hash.Tuple(kindFloat, math.Float64bits(min), math.Float64bits(max), bitsCount)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.floats[key]; ok {
		if existing.min == min && existing.max == max && existing.bits == bitsCount {
			return existing
		}
		return NewFloatCompressor(min, max, bitsCount)
	}

	fresh := NewFloatCompressor(min, max, bitsCount)
	c.floats[key] = fresh
	_ = c.tracker.Track(fmt.Sprintf("float[%v,%v]@%dbits", min, max, bitsCount), key)

	return fresh
}

// Double returns a memoized DoubleCompressor for [min,max] quantized into
// bitsCount bits, constructing and registering one on first use.
func (c *Cache) Double(min, max float64, bitsCount int) *DoubleCompressor {
	key := hash.Tuple(kindDouble, math.Float64bits(min), math.Float64bits(max), bitsCount)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.doubles[key]; ok {
		if existing.min == min && existing.max == max && existing.bits == bitsCount {
			return existing
		}
		return NewDoubleCompressor(min, max, bitsCount)
	}

	fresh := NewDoubleCompressor(min, max, bitsCount)
	c.doubles[key] = fresh
	_ = c.tracker.Track(fmt.Sprintf("double[%v,%v]@%dbits", min, max, bitsCount), key)

	return fresh
}

// defaultCache is the process-wide Cache instance used by package-level
// convenience constructors. It is immutable in shape (the map grows but is
// never replaced) after lazy construction on first use.
var (
	defaultCacheOnce sync.Once
	defaultCacheVal  *Cache
)

func defaultCache() *Cache {
	defaultCacheOnce.Do(func() {
		defaultCacheVal = NewCache()
	})

	return defaultCacheVal
}

// CachedUInt returns a UIntCompressor for [min,max] from the package-level
// default Cache.
func CachedUInt(min, max uint64) *UIntCompressor {
	return defaultCache().UInt(min, max)
}

// CachedInt returns an IntCompressor for [min,max] from the package-level
// default Cache.
func CachedInt(min, max int64) *IntCompressor {
	return defaultCache().Int(min, max)
}

// CachedFloat returns a FloatCompressor for [min,max]@bitsCount from the
// package-level default Cache.
func CachedFloat(min, max float64, bitsCount int) *FloatCompressor {
	return defaultCache().Float(min, max, bitsCount)
}

// CachedDouble returns a DoubleCompressor for [min,max]@bitsCount from the
// package-level default Cache.
func CachedDouble(min, max float64, bitsCount int) *DoubleCompressor {
	return defaultCache().Double(min, max, bitsCount)
}
