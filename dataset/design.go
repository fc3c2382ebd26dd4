package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/linreg/internal/options"
)

// InterceptColumn is the design column name used for the constant term.
const InterceptColumn = "const"

// Design bundles a response vector with its aligned design matrix.
//
// Rows of Matrix align 1:1 with Response and with the source table. When the
// intercept is included, the first design column is identically 1.0 and is
// named InterceptColumn.
type Design struct {
	// ResponseName is the name of the response column.
	ResponseName string
	// Response is the response vector y.
	Response []float64
	// Columns names the design matrix columns in order.
	Columns []string
	// Matrix is the n×p design matrix X.
	Matrix *mat.Dense
	// Intercept reports whether the first column is the constant term.
	Intercept bool
}

type designConfig struct {
	intercept bool
}

// DesignOption configures design matrix construction.
type DesignOption = options.Option[*designConfig]

// WithIntercept prepends a constant column of 1.0 to the design matrix.
func WithIntercept() DesignOption {
	return options.NoError(func(cfg *designConfig) {
		cfg.intercept = true
	})
}

// NewDesign selects the response and predictor columns from the table and
// builds the design matrix.
//
// Every named column must exist (ErrColumnNotFound otherwise) and must be
// complete (ErrMissingValue otherwise); both abort construction with no
// partial result.
func NewDesign(t *Table, response string, predictors []string, opts ...DesignOption) (*Design, error) {
	cfg := &designConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(predictors) == 0 {
		return nil, errors.New("at least one predictor column is required")
	}

	checked := append([]string{response}, predictors...)
	if err := t.CheckComplete(checked...); err != nil {
		return nil, err
	}

	y, err := t.Column(response)
	if err != nil {
		return nil, err
	}

	n := t.NumRows()
	p := len(predictors)
	if cfg.intercept {
		p++
	}

	columns := make([]string, 0, p)
	x := mat.NewDense(n, p, nil)

	col := 0
	if cfg.intercept {
		columns = append(columns, InterceptColumn)
		for row := range n {
			x.Set(row, 0, 1.0)
		}
		col = 1
	}

	for _, name := range predictors {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, name)
		x.SetCol(col, values)
		col++
	}

	return &Design{
		ResponseName: response,
		Response:     y,
		Columns:      columns,
		Matrix:       x,
		Intercept:    cfg.intercept,
	}, nil
}

// NewMatrix builds an n×p matrix from predictor columns, optionally prefixed
// with a constant column. It is a convenience for constructing prediction
// grids that mirror a fitted design.
func NewMatrix(intercept bool, predictors ...[]float64) (*mat.Dense, error) {
	if len(predictors) == 0 {
		return nil, errors.New("at least one predictor column is required")
	}

	n := len(predictors[0])
	for i, col := range predictors[1:] {
		if len(col) != n {
			return nil, fmt.Errorf("%w: predictor %d has %d values, expected %d", ErrLengthMismatch, i+1, len(col), n)
		}
	}

	p := len(predictors)
	if intercept {
		p++
	}

	x := mat.NewDense(n, p, nil)
	col := 0
	if intercept {
		for row := range n {
			x.Set(row, 0, 1.0)
		}
		col = 1
	}
	for _, values := range predictors {
		x.SetCol(col, values)
		col++
	}

	return x, nil
}
