package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStatsTable(t *testing.T) {
	points, err := SampleDistribution(exampleStats, 200)
	assert.NoError(t, err)

	rendered := GenerateStatsTable(exampleStats, 200, points)
	assert.Contains(t, rendered, "STATISTIC")
	assert.Contains(t, rendered, "77.31%")
	assert.Contains(t, rendered, "15.17%")
	assert.Contains(t, rendered, "24%")
	assert.Contains(t, rendered, "100%")
	assert.Contains(t, rendered, "200")
}

func TestPeakFrequency(t *testing.T) {
	points := []DataPoint{{Frequency: 0.2}, {Frequency: 5.31}, {Frequency: 1.4}}
	assert.Equal(t, 5.31, peakFrequency(points))
	assert.Equal(t, 0.0, peakFrequency(nil))
}
