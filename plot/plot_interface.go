package plot

type dataForCurve interface {
	GetNameGraph() string
	getXValues() []float64
	getYValues() []float64
	getXLabels() []string
}
