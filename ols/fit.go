package ols

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/linreg/dataset"
)

// smallSampleObs is the observation count below which kurtosis-based
// normality diagnostics are statistically unreliable.
const smallSampleObs = 20

// isSingularity reports whether err is gonum's near-singular Condition error
// or the exact-singularity error. Both map to the non-fatal ill-conditioning
// diagnostic.
func isSingularity(err error) bool {
	var cond mat.Condition

	return errors.As(err, &cond) || errors.Is(err, mat.ErrSingular)
}

// Fit estimates β minimizing ‖y − Xβ‖² for the given design and derives the
// standard inferential statistics.
//
// The solve is QR-based via gonum; a near or exactly rank-deficient design
// does not fail the fit but is surfaced through FitResult.CondIll and the
// condition number. The returned result is immutable.
func Fit(d *dataset.Design) (*FitResult, error) {
	if d == nil || d.Matrix == nil {
		return nil, errors.New("nil design")
	}

	n, p := d.Matrix.Dims()
	if len(d.Response) != n {
		return nil, fmt.Errorf("response has %d values, design matrix has %d rows", len(d.Response), n)
	}
	if n <= p {
		return nil, fmt.Errorf("need more observations than parameters: n=%d, p=%d", n, p)
	}

	y := mat.NewVecDense(n, append([]float64(nil), d.Response...))

	// Least squares solve. gonum reports near-singularity through a
	// mat.Condition error while still storing the solution; that maps to the
	// non-fatal ill-conditioning diagnostic.
	var beta mat.VecDense
	condIll := false
	if err := beta.SolveVec(d.Matrix, y); err != nil {
		if !isSingularity(err) {
			return nil, fmt.Errorf("least squares solve failed: %w", err)
		}
		condIll = true
	}

	coeffs := make([]float64, p)
	copy(coeffs, beta.RawVector().Data)

	// Fitted values and residuals.
	var yhat mat.VecDense
	yhat.MulVec(d.Matrix, &beta)
	fitted := make([]float64, n)
	copy(fitted, yhat.RawVector().Data)

	residuals := make([]float64, n)
	ssr := 0.0
	for i := range residuals {
		residuals[i] = d.Response[i] - fitted[i]
		ssr += residuals[i] * residuals[i]
	}

	// Total sum of squares: centered with an intercept, uncentered without.
	tss := 0.0
	if d.Intercept {
		mean := stat.Mean(d.Response, nil)
		for _, v := range d.Response {
			tss += (v - mean) * (v - mean)
		}
	} else {
		for _, v := range d.Response {
			tss += v * v
		}
	}

	dfResid := n - p
	dfModel := p
	if d.Intercept {
		dfModel = p - 1
	}

	rsq := 0.0
	if tss > 0 {
		rsq = 1.0 - ssr/tss
	}
	adjRsq := rsq
	if d.Intercept {
		adjRsq = 1.0 - (1.0-rsq)*float64(n-1)/float64(dfResid)
	} else {
		adjRsq = 1.0 - (1.0-rsq)*float64(n)/float64(dfResid)
	}

	sigma2 := ssr / float64(dfResid)

	// Coefficient covariance σ²(XᵗX)⁻¹. The inverse may also report
	// ill-conditioning; keep the diagnostic and the (fragile) numbers.
	var xtx, xtxInv mat.Dense
	xtx.Mul(d.Matrix.T(), d.Matrix)
	if err := xtxInv.Inverse(&xtx); err != nil {
		if !isSingularity(err) {
			return nil, fmt.Errorf("coefficient covariance failed: %w", err)
		}
		condIll = true
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dfResid)}
	stdErrs := make([]float64, p)
	tVals := make([]float64, p)
	pVals := make([]float64, p)
	for i := range p {
		stdErrs[i] = math.Sqrt(sigma2 * xtxInv.At(i, i))
		tVals[i] = coeffs[i] / stdErrs[i]
		pVals[i] = 2.0 * tDist.CDF(-math.Abs(tVals[i]))
	}

	fStat := math.NaN()
	fPValue := math.NaN()
	if dfModel > 0 && ssr > 0 {
		ess := tss - ssr
		fStat = (ess / float64(dfModel)) / sigma2
		fDist := distuv.F{D1: float64(dfModel), D2: float64(dfResid)}
		fPValue = fDist.Survival(fStat)
	}

	// Gaussian log-likelihood at the MLE variance ssr/n.
	ll := -0.5 * float64(n) * (math.Log(2.0*math.Pi) + math.Log(ssr/float64(n)) + 1.0)
	aic := 2.0*float64(p) - 2.0*ll
	bic := float64(p)*math.Log(float64(n)) - 2.0*ll

	skew := stat.Skew(residuals, nil)
	kurt := stat.ExKurtosis(residuals, nil) + 3.0
	jb := float64(n) / 6.0 * (skew*skew + (kurt-3.0)*(kurt-3.0)/4.0)
	jbDist := distuv.ChiSquared{K: 2}
	jbP := jbDist.Survival(jb)

	cond := mat.Cond(d.Matrix, 2)

	return &FitResult{
		ResponseName: d.ResponseName,
		Columns:      append([]string(nil), d.Columns...),
		Coefficients: coeffs,
		StdErrors:    stdErrs,
		TValues:      tVals,
		PValues:      pVals,

		FittedValues: fitted,
		Residuals:    residuals,

		NumObs:    n,
		NumParams: p,
		DFResid:   dfResid,
		DFModel:   dfModel,
		Intercept: d.Intercept,

		RSquared:      rsq,
		AdjRSquared:   adjRsq,
		FStat:         fStat,
		FPValue:       fPValue,
		LogLikelihood: ll,
		AIC:           aic,
		BIC:           bic,
		ResidVariance: sigma2,

		Skewness:             skew,
		Kurtosis:             kurt,
		JarqueBera:           jb,
		JarqueBeraP:          jbP,
		DurbinWatson:         durbinWatson(residuals),
		SmallSampleNormality: n < smallSampleObs,

		CondNumber: cond,
		CondIll:    condIll,
	}, nil
}
