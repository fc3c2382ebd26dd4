package modelio

import "github.com/klauspost/compress/s2"

// S2Codec compresses model payloads with S2.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// Compress compresses data using S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
