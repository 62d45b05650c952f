// distribution_sampler.go
package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// CurvePointCount is the fixed number of points sampled over [Min, Max].
const CurvePointCount = 50

// DataPoint is one plotted point of the curve. Score is the X value
// formatted to one decimal, Frequency the expected count at that score.
type DataPoint struct {
	Score     string
	Frequency float64
}

// ParseSampleSize validates the raw sample size input. Anything that is not
// a positive integer is a validation error, never silently coerced.
func ParseSampleSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Message: "sample size is required"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Message: fmt.Sprintf("sample size %q is not a whole number", raw)}
	}
	if n <= 0 {
		return 0, &ValidationError{Message: fmt.Sprintf("sample size must be positive, got %d", n)}
	}
	return n, nil
}

// SampleDistribution evaluates the normal density with the given mean and
// standard deviation at 50 evenly spaced scores over [Min, Max] and scales
// it by the sample size to approximate expected counts.
func SampleDistribution(stats Stats, sampleSize int) ([]DataPoint, error) {
	if stats.StdDev <= 0 {
		return nil, &ComputationError{Message: fmt.Sprintf("standard deviation must be positive, got %v%%", stats.StdDev)}
	}
	if stats.Max <= stats.Min {
		return nil, &ComputationError{Message: fmt.Sprintf("score range %v%%..%v%% is empty or inverted", stats.Min, stats.Max)}
	}

	normal := distuv.Normal{Mu: stats.Mean, Sigma: stats.StdDev}
	scores := floats.Span(make([]float64, CurvePointCount), stats.Min, stats.Max)

	points := make([]DataPoint, len(scores))
	for i, x := range scores {
		points[i] = DataPoint{
			Score:     fmt.Sprintf("%.1f", x),
			Frequency: roundToTwo(normal.Prob(x) * float64(sampleSize)),
		}
	}
	return points, nil
}

// roundToTwo rounds to two decimal places.
func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
