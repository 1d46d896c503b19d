package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const trendTickStep = 10.0

// seriesColors are assigned to trend series in order
var seriesColors = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
}

func renderTrend(title string, spec *model.TrendSpec, width, height int) ([]byte, error) {
	if len(spec.Categories) == 0 {
		return nil, goerr.New("trend has no categories", goerr.T(model.ErrTagInvalidInput))
	}
	if spec.YMax <= spec.YMin {
		return nil, goerr.New("trend y range is empty",
			goerr.V("min", spec.YMin),
			goerr.V("max", spec.YMax),
			goerr.T(model.ErrTagInvalidInput))
	}

	xs := make([]float64, len(spec.Categories))
	for i := range xs {
		xs[i] = float64(i)
	}

	var series []gochart.Series
	for i, s := range spec.Series {
		if len(s.Values) != len(spec.Categories) {
			return nil, goerr.New("trend series length does not match categories",
				goerr.V("series", s.Name),
				goerr.V("values", len(s.Values)),
				goerr.V("categories", len(spec.Categories)),
				goerr.T(model.ErrTagInvalidInput))
		}
		color := seriesColors[i%len(seriesColors)]
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: clampAll(s.Values, spec.YMin, spec.YMax),
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12}},
		XAxis: gochart.XAxis{
			Name:  spec.XTitle,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(spec.Categories)) - 0.5},
			Ticks: categoryTicks(spec.Categories),
		},
		YAxis: gochart.YAxis{
			Name:  spec.YTitle,
			Range: &gochart.ContinuousRange{Min: spec.YMin, Max: spec.YMax},
			Ticks: valueTicks(spec.YMin, spec.YMax),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render trend chart",
			goerr.V("title", title),
			goerr.T(model.ErrTagRenderFailed))
	}
	return buf.Bytes(), nil
}

// categoryTicks labels each integer position with its category. Unlabeled ticks at
// the half positions pin the axis range, since go-chart takes the range from ticks.
func categoryTicks(categories []string) []gochart.Tick {
	ticks := []gochart.Tick{{Value: -0.5}}
	for i, c := range categories {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: c})
	}
	return append(ticks, gochart.Tick{Value: float64(len(categories)) - 0.5})
}

func valueTicks(lo, hi float64) []gochart.Tick {
	var ticks []gochart.Tick
	for v := lo; v < hi; v += trendTickStep {
		ticks = append(ticks, gochart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return append(ticks, gochart.Tick{Value: hi, Label: fmt.Sprintf("%.0f", hi)})
}

func clampAll(values []float64, lo, hi float64) []float64 {
	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = math.Min(math.Max(v, lo), hi)
	}
	return result
}
