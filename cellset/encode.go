package cellset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the block compressor applied by Encode.
type Compression uint8

const (
	// CompressionNone stores the Roaring bytes as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

const headerSize = 9

// maxPayloadSize caps a single decoded payload. A full 2^32-code Roaring
// bitmap serializes to well under this.
const maxPayloadSize = 1 << 30

var (
	// ErrUnknownCompression is returned for an unsupported compression tag.
	ErrUnknownCompression = errors.New("cellset: unknown compression")
	// ErrCorrupt is returned when an encoded set fails validation.
	ErrCorrupt = errors.New("cellset: corrupt encoding")
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Encode writes s to w using the given compression.
//
// If compression does not shrink the payload, it is stored uncompressed.
func (s *Set) Encode(w io.Writer, c Compression) error {
	raw, err := s.MarshalBinary()
	if err != nil {
		return err
	}

	var compressed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(raw)
	case CompressionZSTD:
		compressed = compressZSTD(raw)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
	if err != nil {
		return err
	}

	var hdr [headerSize]byte
	hdr[0] = byte(c)
	binary.LittleEndian.PutUint32(hdr[1:], uint32(len(raw)))

	payload := raw
	if len(compressed) > 0 && len(compressed) < len(raw) {
		binary.LittleEndian.PutUint32(hdr[5:], uint32(len(compressed)))
		payload = compressed
	}

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads a set written by Encode.
func Decode(r io.Reader) (*Set, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	c := Compression(hdr[0])
	rawSize := binary.LittleEndian.Uint32(hdr[1:])
	compressedSize := binary.LittleEndian.Uint32(hdr[5:])

	if c > CompressionZSTD {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
	if rawSize > maxPayloadSize || compressedSize > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload too large", ErrCorrupt)
	}

	if compressedSize == 0 {
		raw := make([]byte, rawSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, err
		}
		return decodeRaw(raw)
	}

	data := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}

	var (
		raw []byte
		err error
	)
	switch c {
	case CompressionLZ4:
		raw, err = decompressLZ4(data, rawSize)
	case CompressionZSTD:
		raw, err = decompressZSTD(data, rawSize)
	default:
		return nil, fmt.Errorf("%w: compressed payload without compressor", ErrCorrupt)
	}
	if err != nil {
		return nil, err
	}
	return decodeRaw(raw)
}

func decodeRaw(raw []byte) (*Set, error) {
	s := New()
	if err := s.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return s, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

func decompressLZ4(data []byte, size uint32) ([]byte, error) {
	result := make([]byte, size)
	n, err := lz4.UncompressBlock(data, result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if uint32(n) != size {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return result, nil
}

func decompressZSTD(data []byte, size uint32) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	decoded, err := dec.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if uint32(len(decoded)) != size {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return decoded, nil
}
