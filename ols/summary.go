package ols

import (
	"fmt"
	"strings"
)

const summaryWidth = 72

// Summary renders a formatted text report of the fit: the coefficient table
// with standard errors, t-statistics and p-values, followed by the model
// statistics and residual diagnostics.
func (r *FitResult) Summary() string {
	var b strings.Builder

	rule := strings.Repeat("=", summaryWidth)
	thin := strings.Repeat("-", summaryWidth)

	b.WriteString(center("OLS Regression Results", summaryWidth))
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')

	writePair(&b, "Response:", r.ResponseName, "No. Observations:", fmt.Sprintf("%d", r.NumObs))
	writePair(&b, "Model:", "OLS", "Df Residuals:", fmt.Sprintf("%d", r.DFResid))
	writePair(&b, "Method:", "Least Squares", "Df Model:", fmt.Sprintf("%d", r.DFModel))
	writePair(&b, "R-squared:", fmt.Sprintf("%.4f", r.RSquared), "Adj. R-squared:", fmt.Sprintf("%.4f", r.AdjRSquared))
	writePair(&b, "F-statistic:", fmt.Sprintf("%.4g", r.FStat), "Prob (F-statistic):", fmt.Sprintf("%.3g", r.FPValue))
	writePair(&b, "Log-Likelihood:", fmt.Sprintf("%.4f", r.LogLikelihood), "AIC:", fmt.Sprintf("%.2f", r.AIC))
	writePair(&b, "", "", "BIC:", fmt.Sprintf("%.2f", r.BIC))

	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-14s %12s %12s %10s %10s\n", "", "coef", "std err", "t", "P>|t|")
	b.WriteString(thin)
	b.WriteByte('\n')
	for i, name := range r.Columns {
		fmt.Fprintf(&b, "%-14s %12.4f %12.4f %10.3f %10.3f\n",
			name, r.Coefficients[i], r.StdErrors[i], r.TValues[i], r.PValues[i])
	}

	b.WriteString(rule)
	b.WriteByte('\n')
	writePair(&b, "Skew:", fmt.Sprintf("%.4f", r.Skewness), "Kurtosis:", fmt.Sprintf("%.4f", r.Kurtosis))
	writePair(&b, "Jarque-Bera (JB):", fmt.Sprintf("%.4f", r.JarqueBera), "Prob(JB):", fmt.Sprintf("%.3g", r.JarqueBeraP))
	writePair(&b, "Durbin-Watson:", fmt.Sprintf("%.4f", r.DurbinWatson), "Cond. No.:", fmt.Sprintf("%.3g", r.CondNumber))
	b.WriteString(rule)
	b.WriteByte('\n')

	if r.SmallSampleNormality {
		fmt.Fprintf(&b, "Note: kurtosis-based normality diagnostics are unreliable with fewer\nthan %d observations (n=%d).\n", smallSampleObs, r.NumObs)
	}
	if r.CondIll {
		b.WriteString("Note: the design matrix is near rank-deficient; coefficient estimates\nare numerically fragile.\n")
	}

	return b.String()
}

// writePair writes a two-column "label value | label value" summary line.
func writePair(b *strings.Builder, leftLabel, leftValue, rightLabel, rightValue string) {
	fmt.Fprintf(b, "%-20s %14s   %-20s %12s\n", leftLabel, leftValue, rightLabel, rightValue)
}

// center pads s to width with leading spaces.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2

	return strings.Repeat(" ", pad) + s
}
