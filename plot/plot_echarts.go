package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderCurveHTML renders the sampled curve as an interactive echarts page:
// scores on the category axis, frequencies as a smoothed area line.
func RenderCurveHTML(data dataForCurve, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: data.GetNameGraph(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Score",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Frequency",
		}),
	)

	yValues := data.getYValues()
	lineData := make([]opts.LineData, len(yValues))
	for i, v := range yValues {
		lineData[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(data.getXLabels()).
		AddSeries("Frequency", lineData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}),
		)

	return line.Render(w)
}
