package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDesign_WithIntercept(t *testing.T) {
	table, err := Load(longleyPath)
	require.NoError(t, err)

	design, err := NewDesign(table, "Employed", []string{"GNP"}, WithIntercept())
	require.NoError(t, err)

	require.Equal(t, "Employed", design.ResponseName)
	require.True(t, design.Intercept)
	require.Equal(t, []string{InterceptColumn, "GNP"}, design.Columns)
	require.Len(t, design.Response, 16)

	rows, cols := design.Matrix.Dims()
	require.Equal(t, 16, rows)
	require.Equal(t, 2, cols)

	for row := range rows {
		require.Equal(t, 1.0, design.Matrix.At(row, 0), "constant column must be identically 1.0")
	}

	gnp, err := table.Column("GNP")
	require.NoError(t, err)
	for row := range rows {
		require.Equal(t, gnp[row], design.Matrix.At(row, 1), "predictor column must align with the table rows")
	}
}

func TestNewDesign_WithoutIntercept(t *testing.T) {
	table, err := Load(longleyPath)
	require.NoError(t, err)

	design, err := NewDesign(table, "Employed", []string{"GNP"})
	require.NoError(t, err)

	require.False(t, design.Intercept)
	require.Equal(t, []string{"GNP"}, design.Columns)

	rows, cols := design.Matrix.Dims()
	require.Equal(t, 16, rows)
	require.Equal(t, 1, cols)
}

func TestNewDesign_MultiplePredictors(t *testing.T) {
	table, err := Load(longleyPath)
	require.NoError(t, err)

	design, err := NewDesign(table, "Employed", []string{"GNP", "Unemployed", "Population"}, WithIntercept())
	require.NoError(t, err)

	require.Equal(t, []string{InterceptColumn, "GNP", "Unemployed", "Population"}, design.Columns)
	_, cols := design.Matrix.Dims()
	require.Equal(t, 4, cols)
}

func TestNewDesign_Errors(t *testing.T) {
	table, err := Load(longleyPath)
	require.NoError(t, err)

	t.Run("unknown predictor", func(t *testing.T) {
		_, err := NewDesign(table, "Employed", []string{"Exports"}, WithIntercept())
		require.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("unknown response", func(t *testing.T) {
		_, err := NewDesign(table, "Wages", []string{"GNP"})
		require.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("no predictors", func(t *testing.T) {
		_, err := NewDesign(table, "Employed", nil)
		require.Error(t, err)
	})
}

func TestNewDesign_MissingValueAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.csv")
	content := "Year,GNP,Employed\n1947,234.289,60.323\n1948,NA,61.122\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	_, err = NewDesign(table, "Employed", []string{"GNP"}, WithIntercept())
	require.ErrorIs(t, err, ErrMissingValue, "incomplete columns must abort design construction")
}

func TestNewMatrix(t *testing.T) {
	x, err := NewMatrix(true, []float64{1, 2, 3})
	require.NoError(t, err)

	rows, cols := x.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 1.0, x.At(0, 0))
	require.Equal(t, 3.0, x.At(2, 1))

	_, err = NewMatrix(false)
	require.Error(t, err)

	_, err = NewMatrix(false, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
