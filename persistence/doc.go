// Package persistence serializes aligned diagram arrays to a compact
// binary format.
//
// The format is a fixed header (magic, version, compression mode,
// shape, resolved infinity value), a dimension/width table, and the
// little-endian float64 payload, optionally LZ4- or ZSTD-compressed
// as one block. A CRC32-IEEE checksum over the stored payload detects
// accidental corruption on load.
//
// CRC32 is not cryptographically secure; it guards against storage
// corruption, not tampering.
package persistence
