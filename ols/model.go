package ols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch indicates a prediction matrix whose column count
// disagrees with the fitted coefficient count.
var ErrDimensionMismatch = errors.New("design matrix column count mismatch")

// Coefficients is the minimal portable part of a fitted model: everything
// needed to predict, and nothing else. It is what the modelio package
// persists.
type Coefficients struct {
	// ResponseName is the name of the response column the model was fit on.
	ResponseName string
	// Columns names the design matrix columns, aligned with Values.
	Columns []string
	// Values holds the fitted coefficient vector β.
	Values []float64
	// Intercept reports whether the first column is the constant term.
	Intercept bool
}

// Predict computes ŷ = Xβ for a design matrix with the same column count as
// the fitted model.
//
// Returns an error wrapping ErrDimensionMismatch when the column counts
// disagree; the output is recomputed on every call.
func (c Coefficients) Predict(x *mat.Dense) ([]float64, error) {
	n, p := x.Dims()
	if p != len(c.Values) {
		return nil, fmt.Errorf("%w: matrix has %d columns, model has %d coefficients", ErrDimensionMismatch, p, len(c.Values))
	}

	beta := mat.NewVecDense(len(c.Values), append([]float64(nil), c.Values...))
	var yhat mat.VecDense
	yhat.MulVec(x, beta)

	out := make([]float64, n)
	copy(out, yhat.RawVector().Data)

	return out, nil
}

// FitResult is the immutable outcome of an OLS fit. It is created once by
// Fit and never mutated afterwards.
type FitResult struct {
	// ResponseName is the name of the response column.
	ResponseName string
	// Columns names the design matrix columns, aligned with Coefficients.
	Columns []string
	// Coefficients is the fitted coefficient vector β.
	Coefficients []float64
	// StdErrors holds the coefficient standard errors.
	StdErrors []float64
	// TValues holds β_i / SE_i per coefficient.
	TValues []float64
	// PValues holds two-sided p-values from the t distribution with
	// DFResid degrees of freedom.
	PValues []float64

	// FittedValues is Xβ on the training design matrix.
	FittedValues []float64
	// Residuals is y − Xβ.
	Residuals []float64

	// NumObs is the number of observations n.
	NumObs int
	// NumParams is the number of design columns p.
	NumParams int
	// DFResid is the residual degrees of freedom, n − p.
	DFResid int
	// DFModel is the model degrees of freedom (p − 1 with intercept, p without).
	DFModel int
	// Intercept reports whether the design contained a constant column.
	Intercept bool

	// RSquared is the coefficient of determination. Centered when the model
	// has an intercept, uncentered otherwise.
	RSquared float64
	// AdjRSquared penalizes RSquared for the number of parameters.
	AdjRSquared float64
	// FStat compares the model against the intercept-only baseline.
	FStat float64
	// FPValue is the upper-tail p-value of FStat.
	FPValue float64
	// LogLikelihood is the Gaussian log-likelihood at the fitted parameters.
	LogLikelihood float64
	// AIC is the Akaike information criterion.
	AIC float64
	// BIC is the Bayesian information criterion.
	BIC float64
	// ResidVariance is the unbiased residual variance eᵗe / (n−p).
	ResidVariance float64

	// Skewness is the sample skewness of the residuals.
	Skewness float64
	// Kurtosis is the sample kurtosis of the residuals (normal = 3).
	Kurtosis float64
	// JarqueBera is the Jarque–Bera normality statistic.
	JarqueBera float64
	// JarqueBeraP is its χ²(2) p-value.
	JarqueBeraP float64
	// DurbinWatson is the first-order residual autocorrelation statistic.
	DurbinWatson float64
	// SmallSampleNormality flags that the kurtosis-based normality
	// diagnostics are unreliable because n < 20.
	SmallSampleNormality bool

	// CondNumber is the 2-norm condition number of the design matrix.
	CondNumber float64
	// CondIll flags a near or exactly rank-deficient design. The fit is
	// still returned; its numbers are fragile.
	CondIll bool
}

// Coeffs extracts the portable coefficient record of the fit.
func (r *FitResult) Coeffs() Coefficients {
	return Coefficients{
		ResponseName: r.ResponseName,
		Columns:      append([]string(nil), r.Columns...),
		Values:       append([]float64(nil), r.Coefficients...),
		Intercept:    r.Intercept,
	}
}

// Predict computes ŷ = Xβ with the fitted coefficients.
//
// Returns an error wrapping ErrDimensionMismatch when x's column count
// differs from the fitted coefficient count.
func (r *FitResult) Predict(x *mat.Dense) ([]float64, error) {
	return r.Coeffs().Predict(x)
}

// String returns a one-line summary of the fit.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{Response: %s, Params: %d, R²: %.4f, F: %.2f}",
		r.ResponseName, r.NumParams, r.RSquared, r.FStat)
}
