package persistence

import "errors"

const (
	// MagicNumber identifies topogo diagram files (ASCII: "TPD0").
	MagicNumber = 0x54504430
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000
)

// Compression selects the payload compression mode.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD Compression = 2
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression mode")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
)

// fileHeader is the fixed-size header at the start of every diagram
// file. Written little-endian via encoding/binary.
type fileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	SampleCount uint64
	DimCount    uint32
	Checksum    uint32 // CRC32-IEEE of the stored payload bytes
	Infinity    float64
	PayloadSize uint64 // stored (possibly compressed) payload bytes
	RawSize     uint64 // uncompressed payload bytes
}

// dimEntry is one row of the dimension table following the header.
type dimEntry struct {
	Dimension uint32
	Width     uint32
}
