package persistence

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// compressPayload compresses data according to mode. A nil second
// return with CompressionLZ4 means the block was incompressible and
// the caller should fall back to storing it raw.
func compressPayload(data []byte, mode Compression) ([]byte, error) {
	switch mode {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 {
			return nil, nil // incompressible
		}
		return dst[:n], nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, ErrInvalidCompression
	}
}

// decompressPayload reverses compressPayload. rawSize is the expected
// uncompressed length.
func decompressPayload(data []byte, mode Compression, rawSize int) ([]byte, error) {
	switch mode {
	case CompressionNone:
		if len(data) != rawSize {
			return nil, fmt.Errorf("payload size %d does not match raw size %d", len(data), rawSize)
		}
		return data, nil
	case CompressionLZ4:
		dst := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("lz4 decompressed %d bytes, want %d", n, rawSize)
		}
		return dst, nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer dec.Close()
		dst, err := dec.DecodeAll(data, make([]byte, 0, rawSize))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(dst) != rawSize {
			return nil, fmt.Errorf("zstd decompressed %d bytes, want %d", len(dst), rawSize)
		}
		return dst, nil
	default:
		return nil, ErrInvalidCompression
	}
}
