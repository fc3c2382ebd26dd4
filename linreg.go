// Package linreg performs ordinary least squares linear regression on small
// tabular datasets: load a delimited table, build a design matrix, fit,
// inspect the usual statistics, predict, and chart the result.
//
// The heavy lifting is delegated to gonum; linreg wires the pieces into a
// single linear pipeline with clear failure points:
//
//	Load → NewDesign → Fit → (Predict, Summary) → plotchart
//
// # Quick Start
//
//	table, err := linreg.LoadTable("longley.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := linreg.FitColumns(table, "Employed", []string{"GNP"},
//	    dataset.WithIntercept())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Summary())
//
// # Packages
//
//   - dataset: table loading and design matrix construction
//   - ols: the fit procedure, derived statistics, prediction
//   - modelio: persisting fitted coefficients to versioned model files
//   - plotchart: scatter + fitted-line rendering
//
// The pipeline is single-threaded and compute-once: every result is
// immutable after construction and safe to share between goroutines.
package linreg

import (
	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/ols"
)

// LoadTable reads a CSV file with a header row and an integer index column
// into an observation table.
//
// Example:
//
//	table, err := linreg.LoadTable("longley.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadTable(path string) (*dataset.Table, error) {
	return dataset.Load(path)
}

// FitColumns builds a design matrix from the named columns and fits it by
// ordinary least squares in one step.
//
// Options are forwarded to dataset.NewDesign; pass dataset.WithIntercept()
// to include a constant column.
//
// Example:
//
//	result, err := linreg.FitColumns(table, "Employed", []string{"GNP"},
//	    dataset.WithIntercept())
func FitColumns(t *dataset.Table, response string, predictors []string, opts ...dataset.DesignOption) (*ols.FitResult, error) {
	design, err := dataset.NewDesign(t, response, predictors, opts...)
	if err != nil {
		return nil, err
	}

	return ols.Fit(design)
}

// FitFile loads a table from path and fits the named columns. It is the
// one-call form of the full pipeline.
func FitFile(path, response string, predictors []string, opts ...dataset.DesignOption) (*ols.FitResult, error) {
	t, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	return FitColumns(t, response, predictors, opts...)
}
