package main

import (
	"fmt"
)

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// GenerateStatsTable renders the parsed statistics as a text table for the
// result page and the bot reply.
func GenerateStatsTable(stats Stats, sampleSize int, points []DataPoint) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"Mean", fmt.Sprintf("%.2f%%", stats.Mean)},
		{"Std deviation", fmt.Sprintf("%.2f%%", stats.StdDev)},
		{"Min score", fmt.Sprintf("%.0f%%", stats.Min)},
		{"Max score", fmt.Sprintf("%.0f%%", stats.Max)},
		{"Sample size", fmt.Sprintf("%d", sampleSize)},
		{"Peak frequency", fmt.Sprintf("%.2f", peakFrequency(points))},
	})
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func peakFrequency(points []DataPoint) float64 {
	max := 0.0
	for _, p := range points {
		if p.Frequency > max {
			max = p.Frequency
		}
	}
	return max
}
