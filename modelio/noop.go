package modelio

// NoOpCodec bypasses compression. Model payloads are tiny, so this is the
// default.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
