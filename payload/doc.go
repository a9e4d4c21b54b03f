// Package payload provides optional general-purpose compression of an
// already-packed bitstream sequence (the bytes returned by
// stream.Writer.Pack), layered strictly outside the bit-packing core.
//
// The core codec's Non-goal is to exploit declared value ranges, not
// entropy; payload exists for callers who still want an outer
// general-purpose compression pass (e.g. before a network send), without
// mixing that concern into bit cursor accounting. Compress/Decompress
// operate on whole byte sequences and know nothing about bit offsets,
// headers, or CRC trailers inside them.
package payload
