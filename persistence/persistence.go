package persistence

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/hupe1980/topogo/diagram"
)

// Save writes an aligned diagram array to w using the given
// compression mode. An LZ4 block that does not compress is stored
// uncompressed and the header records CompressionNone.
func Save(w io.Writer, a *diagram.Aligned, mode Compression) error {
	raw := encodeFloats(a.Raw())

	stored, err := compressPayload(raw, mode)
	if err != nil {
		return err
	}
	if stored == nil { // incompressible LZ4 block
		stored = raw
		mode = CompressionNone
	}

	dims := a.Dimensions()
	widths := a.Widths()
	header := fileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(mode),
		SampleCount: uint64(a.NumSamples()),
		DimCount:    uint32(len(dims)),
		Checksum:    crc32.ChecksumIEEE(stored),
		Infinity:    a.Infinity(),
		PayloadSize: uint64(len(stored)),
		RawSize:     uint64(len(raw)),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for k := range dims {
		entry := dimEntry{Dimension: uint32(dims[k]), Width: uint32(widths[k])}
		if err := binary.Write(bw, binary.LittleEndian, &entry); err != nil {
			return fmt.Errorf("write dimension table: %w", err)
		}
	}
	if _, err := bw.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return bw.Flush()
}

// Load reads an aligned diagram array written by Save, verifying the
// payload checksum.
func Load(r io.Reader) (*diagram.Aligned, error) {
	br := bufio.NewReader(r)

	var header fileHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}

	dims := make([]int, header.DimCount)
	widths := make([]int, header.DimCount)
	for k := range dims {
		var entry dimEntry
		if err := binary.Read(br, binary.LittleEndian, &entry); err != nil {
			return nil, fmt.Errorf("read dimension table: %w", err)
		}
		dims[k] = int(entry.Dimension)
		widths[k] = int(entry.Width)
	}

	stored := make([]byte, header.PayloadSize)
	if _, err := io.ReadFull(br, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if crc32.ChecksumIEEE(stored) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	raw, err := decompressPayload(stored, Compression(header.Compression), int(header.RawSize))
	if err != nil {
		return nil, err
	}
	data, err := decodeFloats(raw)
	if err != nil {
		return nil, err
	}
	return diagram.FromRaw(dims, widths, int(header.SampleCount), header.Infinity, data)
}

// SaveFile writes an aligned diagram array to path, replacing any
// existing file.
func SaveFile(path string, a *diagram.Aligned, mode Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, a, mode); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads an aligned diagram array from path.
func LoadFile(path string) (*diagram.Aligned, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func encodeFloats(vals []float64) []byte {
	out := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

func decodeFloats(raw []byte) ([]float64, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 8", len(raw))
	}
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return out, nil
}
