package modelio

// ZstdCodec compresses model payloads with Zstandard.
//
// Two implementations exist: a cgo build uses valyala/gozstd, a pure-Go
// build uses klauspost/compress/zstd. Both produce standard zstd frames and
// are interoperable.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)
