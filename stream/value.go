package stream

import "unsafe"

// Value is the set of integer types that can be appended/read as a whole-width
// or range-limited bit field. A single generic pair (AppendFixed/ReadFixed,
// AppendFull/ReadFull) replaces what the source implementation expressed as
// one method overload per integer width.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// bitWidthOf returns the bit width of T's underlying integer type.
func bitWidthOf[T Value](v T) int {
	return int(unsafe.Sizeof(v)) * 8
}
