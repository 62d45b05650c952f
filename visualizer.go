// visualizer.go
package main

// ResultState tells which of the mutually exclusive outcomes a
// VisualizeResult holds.
type ResultState int

const (
	StateIdle ResultState = iota
	StateError
	StateReady
)

// VisualizeResult is the single value the presentation layer consumes.
// Error message and dataset live in one value so a failure can never be
// shown next to stale points.
type VisualizeResult struct {
	State        ResultState
	ErrorMessage string
	Stats        Stats
	SampleSize   int
	Points       []DataPoint
}

func errorResult(err error) VisualizeResult {
	return VisualizeResult{State: StateError, ErrorMessage: err.Error()}
}

// Visualize runs the full pipeline for one user action: extract the
// statistics from the description, validate the sample size, sample the
// curve. The first failure wins and clears everything else.
func Visualize(text string, rawSampleSize string) VisualizeResult {
	stats, err := ExtractStats(text)
	if err != nil {
		return errorResult(err)
	}

	sampleSize, err := ParseSampleSize(rawSampleSize)
	if err != nil {
		return errorResult(err)
	}

	points, err := SampleDistribution(stats, sampleSize)
	if err != nil {
		return errorResult(err)
	}

	return VisualizeResult{
		State:      StateReady,
		Stats:      stats,
		SampleSize: sampleSize,
		Points:     points,
	}
}

// curveSeries splits the sampled points into the label and value slices the
// plot package consumes.
func curveSeries(points []DataPoint) ([]string, []float64) {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Score
		values[i] = p.Frequency
	}
	return labels, values
}
