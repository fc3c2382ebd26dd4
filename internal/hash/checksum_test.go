package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	data := []byte("coefficients")

	first := Checksum(data)
	second := Checksum(data)
	require.Equal(t, first, second, "checksum must be deterministic")

	mutated := append([]byte(nil), data...)
	mutated[0] ^= 0xff
	require.NotEqual(t, first, Checksum(mutated), "single-bit corruption must change the checksum")

	require.Equal(t, Checksum(nil), Checksum([]byte{}), "nil and empty input hash identically")
}
