// Package errs collects the sentinel errors returned by the bitstream codec.
//
// Callers should compare against these with errors.Is rather than string
// matching, since call sites wrap them with fmt.Errorf("%w: ...", ...) to
// attach context (the field name, the offending count, and so on).
package errs

import "errors"

var (
	// ErrTooShort is returned when a read would advance the cursor past the
	// end of the stream's declared bit length.
	ErrTooShort = errors.New("bitstream: too short")

	// ErrEncoding is returned when the bits read are structurally present
	// but do not form a valid value, e.g. an enumeration tag outside its
	// declared variant universe.
	ErrEncoding = errors.New("bitstream: invalid encoding")

	// ErrIncorrectChecksum is returned by the CRC-validated reader
	// constructor when the trailing CRC-32 does not match the computed
	// checksum of the preceding bytes.
	ErrIncorrectChecksum = errors.New("bitstream: incorrect checksum")

	// ErrHashCollision is returned by internal/collision.Tracker.TrackID
	// when a bare hash is registered twice with no description to
	// disambiguate a legitimate re-registration from a genuine collision.
	ErrHashCollision = errors.New("bitstream: hash collision")

	// ErrAlreadyTracked is returned by internal/collision.Tracker.Track
	// when the exact same (description, hash) pair is registered twice.
	ErrAlreadyTracked = errors.New("bitstream: already tracked")
)
