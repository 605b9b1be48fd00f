package metric

import (
	"math"

	"github.com/eth-easl/analyzer/pkg/common"
	"gonum.org/v1/gonum/stat"
)

// Fit summarises a timing series. Exponent is the slope of log(time) over
// log(size) and is nil when fewer than two samples have a non-zero time.
type Fit struct {
	Samples       int      `json:"samples"`
	MeanSeconds   float64  `json:"mean_seconds"`
	StdDevSeconds float64  `json:"stddev_seconds"`
	Exponent      *float64 `json:"exponent,omitempty"`
}

func FitSeries(series *common.TimingSeries) Fit {
	seconds := series.Seconds()
	fit := Fit{Samples: len(seconds)}
	if len(seconds) == 0 {
		return fit
	}

	fit.MeanSeconds = stat.Mean(seconds, nil)
	if len(seconds) > 1 {
		fit.StdDevSeconds = stat.StdDev(seconds, nil)
	}

	if exponent, ok := GrowthExponent(series.Sizes, seconds); ok {
		fit.Exponent = &exponent
	}
	return fit
}

// GrowthExponent fits log(seconds) = a + b*log(size) by least squares and returns b.
func GrowthExponent(sizes []int, seconds []float64) (float64, bool) {
	var xs, ys []float64
	for i, size := range sizes {
		if size <= 0 || i >= len(seconds) || seconds[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(size)))
		ys = append(ys, math.Log(seconds[i]))
	}
	if len(xs) < 2 || xs[0] == xs[len(xs)-1] {
		return 0, false
	}

	_, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0, false
	}
	return beta, true
}
