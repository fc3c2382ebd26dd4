package modelio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/arloliu/linreg/internal/hash"
	"github.com/arloliu/linreg/internal/options"
	"github.com/arloliu/linreg/ols"
)

var (
	// ErrFormat indicates a corrupt or foreign model file.
	ErrFormat = errors.New("invalid model file format")
	// ErrChecksum indicates the payload checksum does not match.
	ErrChecksum = errors.New("model file checksum mismatch")
)

var magic = [4]byte{'O', 'L', 'M', '1'}

const (
	formatVersion = 1
	headerSize    = 12 // magic(4) + version(1) + compression(1) + reserved(2) + payload length(4)
	checksumSize  = 8
	maxNameLen    = math.MaxUint16
)

type encodeConfig struct {
	compression CompressionType
}

// EncodeOption configures model file encoding.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload compression. The default is
// CompressionNone.
func WithCompression(c CompressionType) EncodeOption {
	return options.New(func(cfg *encodeConfig) error {
		if _, err := codecFor(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// Encode serializes the coefficients into the model file format.
func Encode(c ols.Coefficients, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{compression: CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(c.Values) != len(c.Columns) {
		return nil, fmt.Errorf("coefficient count %d disagrees with column count %d", len(c.Values), len(c.Columns))
	}

	payload, err := encodePayload(c)
	if err != nil {
		return nil, err
	}
	checksum := hash.Checksum(payload)

	codec, err := codecFor(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed)+checksumSize)
	out = append(out, magic[:]...)
	out = append(out, formatVersion, byte(cfg.compression), 0, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(compressed)))
	out = append(out, compressed...)
	out = binary.LittleEndian.AppendUint64(out, checksum)

	return out, nil
}

// Decode parses a model file produced by Encode, verifying the checksum.
func Decode(data []byte) (ols.Coefficients, error) {
	if len(data) < headerSize+checksumSize {
		return ols.Coefficients{}, fmt.Errorf("%w: %d bytes is too short", ErrFormat, len(data))
	}
	if [4]byte(data[:4]) != magic {
		return ols.Coefficients{}, fmt.Errorf("%w: bad magic", ErrFormat)
	}
	if data[4] != formatVersion {
		return ols.Coefficients{}, fmt.Errorf("%w: unsupported version %d", ErrFormat, data[4])
	}

	compression := CompressionType(data[5])
	payloadLen := binary.LittleEndian.Uint32(data[8:12])
	if int(payloadLen) != len(data)-headerSize-checksumSize {
		return ols.Coefficients{}, fmt.Errorf("%w: payload length %d disagrees with file size", ErrFormat, payloadLen)
	}

	codec, err := codecFor(compression)
	if err != nil {
		return ols.Coefficients{}, err
	}
	payload, err := codec.Decompress(data[headerSize : headerSize+int(payloadLen)])
	if err != nil {
		return ols.Coefficients{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	stored := binary.LittleEndian.Uint64(data[len(data)-checksumSize:])
	if hash.Checksum(payload) != stored {
		return ols.Coefficients{}, ErrChecksum
	}

	return decodePayload(payload)
}

// SaveFile encodes the coefficients and writes them to path.
func SaveFile(path string, c ols.Coefficients, opts ...EncodeOption) error {
	data, err := Encode(c, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads and decodes a model file from path.
func LoadFile(path string) (ols.Coefficients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ols.Coefficients{}, err
	}

	return Decode(data)
}

// encodePayload serializes the coefficient record: response name, intercept
// flag, column names, and the float64 coefficient bits, all little endian.
func encodePayload(c ols.Coefficients) ([]byte, error) {
	if len(c.ResponseName) > maxNameLen {
		return nil, fmt.Errorf("response name too long: %d bytes", len(c.ResponseName))
	}

	buf := make([]byte, 0, 64+16*len(c.Columns))
	buf = appendString(buf, c.ResponseName)
	if c.Intercept {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(c.Columns)))
	for _, name := range c.Columns {
		if len(name) > maxNameLen {
			return nil, fmt.Errorf("column name too long: %d bytes", len(name))
		}
		buf = appendString(buf, name)
	}
	for _, v := range c.Values {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf, nil
}

func decodePayload(payload []byte) (ols.Coefficients, error) {
	var c ols.Coefficients

	name, rest, err := readString(payload)
	if err != nil {
		return c, err
	}
	c.ResponseName = name

	if len(rest) < 3 {
		return c, fmt.Errorf("%w: truncated payload", ErrFormat)
	}
	c.Intercept = rest[0] == 1
	count := int(binary.LittleEndian.Uint16(rest[1:3]))
	rest = rest[3:]

	c.Columns = make([]string, count)
	for i := range count {
		c.Columns[i], rest, err = readString(rest)
		if err != nil {
			return ols.Coefficients{}, err
		}
	}

	if len(rest) != count*8 {
		return ols.Coefficients{}, fmt.Errorf("%w: expected %d coefficient bytes, got %d", ErrFormat, count*8, len(rest))
	}
	c.Values = make([]float64, count)
	for i := range count {
		c.Values[i] = math.Float64frombits(binary.LittleEndian.Uint64(rest[i*8:]))
	}

	return c, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(s)))

	return append(buf, s...)
}

func readString(buf []byte) (string, []byte, error) {
	if len(buf) < 2 {
		return "", nil, fmt.Errorf("%w: truncated string length", ErrFormat)
	}
	n := int(binary.LittleEndian.Uint16(buf))
	if len(buf) < 2+n {
		return "", nil, fmt.Errorf("%w: truncated string", ErrFormat)
	}

	return string(buf[2 : 2+n]), buf[2+n:], nil
}
