// Package crc computes the IEEE-802.3 CRC-32 checksum used by stream's
// optional frame trailer.
package crc

import "hash/crc32"

// table is the process-wide IEEE polynomial (0xEDB88320) lookup table, built
// once at package initialization. hash/crc32.IEEETable is exactly this table; building it via
// MakeTable(IEEE) rather than hand-rolling the 256-entry table or reaching
// for a third-party CRC package avoids duplicating behavior the standard
// library already provides bit-for-bit, and none of the module's other
// dependencies (xxhash, s2, lz4, zstd) implement CRC-32 at all.
var table = crc32.MakeTable(crc32.IEEE)

// Checksum returns the IEEE-802.3 CRC-32 of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}
