package ols

// durbinWatson computes the Durbin–Watson statistic of the residual series.
// Values near 2 indicate no first-order autocorrelation.
func durbinWatson(residuals []float64) float64 {
	if len(residuals) < 2 {
		return 0
	}

	num := 0.0
	den := 0.0
	for i, e := range residuals {
		den += e * e
		if i > 0 {
			d := e - residuals[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return 0
	}

	return num / den
}
