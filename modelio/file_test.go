package modelio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/ols"
)

func testCoefficients() ols.Coefficients {
	return ols.Coefficients{
		ResponseName: "Employed",
		Columns:      []string{dataset.InterceptColumn, "GNP"},
		Values:       []float64{51.843589781884134, 0.03475229434762905},
		Intercept:    true,
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	compressions := []CompressionType{CompressionNone, CompressionS2, CompressionLZ4, CompressionZstd}

	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			original := testCoefficients()

			data, err := Encode(original, WithCompression(comp))
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)

			require.Equal(t, original.ResponseName, decoded.ResponseName)
			require.Equal(t, original.Columns, decoded.Columns)
			require.Equal(t, original.Intercept, decoded.Intercept)
			require.Equal(t, original.Values, decoded.Values, "coefficients must survive bit-for-bit")
		})
	}
}

func TestEncode_DefaultIsUncompressed(t *testing.T) {
	data, err := Encode(testCoefficients())
	require.NoError(t, err)
	require.Equal(t, byte(CompressionNone), data[5])
}

func TestEncode_MismatchedLengths(t *testing.T) {
	c := testCoefficients()
	c.Values = c.Values[:1]

	_, err := Encode(c)
	require.Error(t, err)
}

func TestWithCompression_Unknown(t *testing.T) {
	_, err := Encode(testCoefficients(), WithCompression(CompressionType(0xee)))
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecode_Corruption(t *testing.T) {
	data, err := Encode(testCoefficients())
	require.NoError(t, err)

	t.Run("payload bit flip fails checksum", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[headerSize] ^= 0x01
		_, err := Decode(corrupted)
		require.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[0] = 'X'
		_, err := Decode(corrupted)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("unsupported version", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[4] = 99
		_, err := Decode(corrupted)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("unknown compression byte", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[5] = 0xee
		_, err := Decode(corrupted)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Decode(data[:headerSize+2])
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		require.ErrorIs(t, err, ErrFormat)
	})
}

func TestSaveLoadFile_PredictionsMatch(t *testing.T) {
	// Fit, save, reload, and compare predictions against the live model.
	table := dataset.New("Year", []int{1947, 1948, 1949, 1950, 1951, 1952})
	require.NoError(t, table.AddColumn("GNP", []float64{234.289, 259.426, 258.054, 284.599, 328.975, 346.999}))
	require.NoError(t, table.AddColumn("Employed", []float64{60.323, 61.122, 60.171, 61.187, 63.221, 63.639}))

	design, err := dataset.NewDesign(table, "Employed", []string{"GNP"}, dataset.WithIntercept())
	require.NoError(t, err)

	result, err := ols.Fit(design)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "employed_gnp.olm")
	require.NoError(t, SaveFile(path, result.Coeffs()))

	reloaded, err := LoadFile(path)
	require.NoError(t, err)

	grid, err := dataset.NewMatrix(true, []float64{300, 400, 500})
	require.NoError(t, err)

	live, err := result.Predict(grid)
	require.NoError(t, err)
	persisted, err := reloaded.Predict(grid)
	require.NoError(t, err)

	require.Equal(t, live, persisted, "reloaded model must predict bit-for-bit identically")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.olm"))
	require.Error(t, err)
}
