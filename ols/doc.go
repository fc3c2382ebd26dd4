// Package ols fits ordinary least squares regression models and computes the
// standard inferential statistics reported alongside them.
//
// The coefficient vector is obtained from a QR-based least squares solve of
// the design matrix, never by explicitly inverting the normal equations.
// Rank deficiency does not fail the fit: the result is returned with its
// condition number and an ill-conditioning flag so callers can decide how
// much to trust the numbers.
//
// # Basic Usage
//
//	design, err := dataset.NewDesign(table, "Employed", []string{"GNP"},
//	    dataset.WithIntercept())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := ols.Fit(design)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Summary())
//
// Predictions use the fitted coefficients against any design matrix with the
// same column count:
//
//	grid, _ := dataset.NewMatrix(true, gnpValues)
//	predicted, err := result.Predict(grid)
//
// # Reported Statistics
//
// Per coefficient: standard error, t-statistic, and two-sided p-value from
// the Student's t distribution with n−p degrees of freedom. Per model: R²,
// adjusted R², F-statistic with p-value, log-likelihood, AIC, BIC, residual
// skewness and kurtosis, Jarque–Bera, Durbin–Watson, and the design matrix
// condition number. Kurtosis-based normality diagnostics are flagged as
// unreliable below 20 observations rather than suppressed.
package ols
