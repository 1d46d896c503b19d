package model

// ChartKind selects how a ChartSpec is drawn
type ChartKind string

const (
	ChartKindTrend ChartKind = "trend"
	ChartKindGauge ChartKind = "gauge"
)

// ChartSpec describes a chart independently of how it is rendered.
// Exactly one of Trend and Gauge is set, matching Kind.
type ChartSpec struct {
	Kind  ChartKind  `json:"kind"`
	Title string     `json:"title"`
	Trend *TrendSpec `json:"trend,omitempty"`
	Gauge *GaugeSpec `json:"gauge,omitempty"`
}

// TrendSeries is one line of a trend chart
type TrendSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// TrendSpec is a line chart over an ordered list of categories
type TrendSpec struct {
	Categories []string      `json:"categories"`
	Series     []TrendSeries `json:"series"`
	XTitle     string        `json:"x_title"`
	YTitle     string        `json:"y_title"`
	YMin       float64       `json:"y_min"`
	YMax       float64       `json:"y_max"`
}

// GaugeSpec is a radial indicator of a single value, optionally with a delta
// against a reference value
type GaugeSpec struct {
	Value     float64  `json:"value"`
	Reference *float64 `json:"reference,omitempty"`
	Min       float64  `json:"min"`
	Max       float64  `json:"max"`
	Decimals  int      `json:"decimals"`
}

// ChartRequest is one chart to render for a report
type ChartRequest struct {
	Role   ArtifactRole
	Index  int
	Spec   ChartSpec
	Width  int
	Height int
}
