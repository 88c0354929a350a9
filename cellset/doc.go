// Package cellset provides a compressed set of cell codes.
//
// Set wraps a 32-bit Roaring bitmap, which suits grid codes well: cells of a
// neighbourhood share long code prefixes and land in the same containers.
// Ring expansion uses a Set both as its visited set and as its result.
//
// # Wire Format
//
// Encode frames the portable Roaring serialization with an optional block
// compressor so a cover can be handed to another process:
//
//	[Compression uint8][UncompressedSize uint32][CompressedSize uint32][Data...]
//
// CompressedSize 0 means Data is stored uncompressed. Integers are little
// endian.
package cellset
