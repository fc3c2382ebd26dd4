package modelio

import "fmt"

// CompressionType selects the payload compression of a model file.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses the payload with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses the payload with S2.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses the payload with LZ4 block compression.
	CompressionLZ4 CompressionType = 0x4
)

// String returns the human-readable name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses model file payloads.
//
// Implementations must round-trip arbitrary byte slices: for every input,
// Decompress(Compress(data)) equals data.
type Codec interface {
	// Compress compresses data. The returned slice is owned by the caller.
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress. The returned slice is owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// codecFor returns the Codec implementing the given compression type.
func codecFor(c CompressionType) (Codec, error) {
	switch c {
	case CompressionNone:
		return NoOpCodec{}, nil
	case CompressionZstd:
		return ZstdCodec{}, nil
	case CompressionS2:
		return S2Codec{}, nil
	case CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression type 0x%x", ErrFormat, uint8(c))
	}
}
