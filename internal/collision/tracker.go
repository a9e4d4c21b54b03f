package collision

import (
	"github.com/arloliu/bitstream/errs"
)

// Tracker records (description, hash) registrations and detects hash
// collisions between them. compressor.Cache uses one to keep a human-
// readable audit trail of which declared compressor shape produced which
// xxHash64 key, and to report how often two distinct shapes collide.
type Tracker struct {
	descriptions     map[uint64]string // hash -> description of the first registrant
	descriptionsList []string          // registration order
	hasCollision     bool
}

// NewTracker creates a new, empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		descriptions:     make(map[uint64]string),
		descriptionsList: make([]string, 0),
	}
}

// TrackID registers a bare hash with no description. Returns errs.ErrHashCollision
// if the hash was already registered, since without a description there's no
// way to tell a legitimate re-registration from a genuine collision.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.descriptions[hash]; exists {
		return errs.ErrHashCollision
	}

	t.descriptions[hash] = ""

	return nil
}

// Track registers desc under hash. Returns errs.ErrEncoding if desc is
// empty, or errs.ErrAlreadyTracked if this exact (desc, hash) pair was
// already registered. A hash reused by a *different* desc is not an error:
// it sets the collision flag and both descriptions are kept in
// registration order.
func (t *Tracker) Track(desc string, hash uint64) error {
	if desc == "" {
		return errs.ErrEncoding
	}

	if existing, exists := t.descriptions[hash]; exists {
		if existing == desc {
			return errs.ErrAlreadyTracked
		}
		t.hasCollision = true
	}

	t.descriptions[hash] = desc
	t.descriptionsList = append(t.descriptionsList, desc)

	return nil
}

// HasCollision reports whether two distinct descriptions have ever shared a
// hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Descriptions returns the registered descriptions in registration order.
func (t *Tracker) Descriptions() []string {
	return t.descriptionsList
}

// Count returns the number of registrations made via Track.
func (t *Tracker) Count() int {
	return len(t.descriptionsList)
}

// Reset clears all registrations and the collision flag, preserving
// capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.descriptions {
		delete(t.descriptions, k)
	}
	t.descriptionsList = t.descriptionsList[:0]
	t.hasCollision = false
}
