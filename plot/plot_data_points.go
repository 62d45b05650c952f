package plot

import "strconv"

type dataPointsForCurve struct {
	xLabels   []string
	yValues   []float64
	nameGraph string
}

// NewCurveData builds the plot input from a sampled curve: one-decimal score
// labels and the frequency at each score, in ascending score order.
func NewCurveData(xLabels []string, yValues []float64, nameGraph string) dataPointsForCurve {
	return dataPointsForCurve{
		xLabels:   xLabels,
		yValues:   yValues,
		nameGraph: nameGraph,
	}
}

func (d dataPointsForCurve) GetNameGraph() string {
	return d.nameGraph
}

func (d dataPointsForCurve) getXLabels() []string {
	return d.xLabels
}

func (d dataPointsForCurve) getYValues() []float64 {
	return d.yValues
}

func (d dataPointsForCurve) getXValues() []float64 {
	xValues := make([]float64, len(d.xLabels))
	for i, label := range d.xLabels {
		// Labels are produced by the sampler with %.1f, so they parse back.
		x, err := strconv.ParseFloat(label, 64)
		if err != nil {
			continue
		}
		xValues[i] = x
	}
	return xValues
}
