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

var (
	gaugeBackground = drawing.ColorWhite
	gaugeTrack      = drawing.ColorFromHex("e5e5e5")
	gaugeBar        = drawing.ColorFromHex("1f77b4")
	gaugeText       = drawing.ColorFromHex("333333")
	gaugeMarker     = drawing.ColorFromHex("444444")
	deltaUp         = drawing.ColorFromHex("3d9970")
	deltaDown       = drawing.ColorFromHex("ff4136")
	deltaFlat       = drawing.ColorFromHex("888888")
)

// gaugeGeometry is the pixel geometry of a half-circle gauge
type gaugeGeometry struct {
	width, height int
	cx, cy        int
	radius        float64
	thickness     float64
	titleY        int
}

func newGaugeGeometry(width, height int) gaugeGeometry {
	titleY := int(float64(height) * 0.12)
	// Arc sits under the title and leaves room for the delta line below its baseline
	radius := math.Min(float64(width)*0.36, float64(height)*0.5)
	return gaugeGeometry{
		width:     width,
		height:    height,
		cx:        width / 2,
		cy:        int(float64(height) * 0.74),
		radius:    radius,
		thickness: radius * 0.28,
		titleY:    titleY,
	}
}

// fraction maps value into [0, 1] over the gauge range
func fraction(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Min(math.Max((value-lo)/(hi-lo), 0), 1)
}

// point returns the pixel on the arc at fraction f and distance rho from the center
func (g gaugeGeometry) point(f, rho float64) (int, int) {
	theta := math.Pi + math.Pi*f
	return g.cx + int(math.Round(math.Cos(theta)*rho)), g.cy + int(math.Round(math.Sin(theta)*rho))
}

func formatDelta(delta float64, decimals int) (string, drawing.Color) {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%.*f", decimals, delta), deltaUp
	case delta < 0:
		return fmt.Sprintf("%.*f", decimals, delta), deltaDown
	default:
		return fmt.Sprintf("%.*f", decimals, 0.0), deltaFlat
	}
}

func renderGauge(title string, spec *model.GaugeSpec, width, height int) ([]byte, error) {
	if spec.Max <= spec.Min {
		return nil, goerr.New("gauge range is empty",
			goerr.V("min", spec.Min),
			goerr.V("max", spec.Max),
			goerr.T(model.ErrTagInvalidInput))
	}

	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load chart font", goerr.T(model.ErrTagRenderFailed))
	}

	r, err := gochart.PNG(width, height)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create raster renderer", goerr.T(model.ErrTagRenderFailed))
	}
	r.SetFont(font)

	g := newGaugeGeometry(width, height)

	r.SetFillColor(gaugeBackground)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	drawCentered(r, title, g.cx, g.titleY, 13, gaugeText)

	// Track, then the value bar over it
	r.SetStrokeWidth(g.thickness)
	r.SetStrokeColor(gaugeTrack)
	x0, y0 := g.point(0, g.radius)
	r.MoveTo(x0, y0)
	r.ArcTo(g.cx, g.cy, g.radius, g.radius, math.Pi, math.Pi)
	r.Stroke()

	if f := fraction(spec.Value, spec.Min, spec.Max); f > 0 {
		r.SetStrokeColor(gaugeBar)
		r.MoveTo(x0, y0)
		r.ArcTo(g.cx, g.cy, g.radius, g.radius, math.Pi, math.Pi*f)
		r.Stroke()
	}

	if spec.Reference != nil {
		f := fraction(*spec.Reference, spec.Min, spec.Max)
		inner := g.radius - g.thickness/2 - 2
		outer := g.radius + g.thickness/2 + 2
		r.SetStrokeWidth(3)
		r.SetStrokeColor(gaugeMarker)
		xi, yi := g.point(f, inner)
		xo, yo := g.point(f, outer)
		r.MoveTo(xi, yi)
		r.LineTo(xo, yo)
		r.Stroke()
	}

	// Range labels under both ends of the arc
	labelY := g.cy + 16
	drawCentered(r, fmt.Sprintf("%.0f", spec.Min), g.cx-int(g.radius), labelY, 9, gaugeText)
	drawCentered(r, fmt.Sprintf("%.0f", spec.Max), g.cx+int(g.radius), labelY, 9, gaugeText)

	drawCentered(r, fmt.Sprintf("%.*f", spec.Decimals, spec.Value), g.cx, g.cy-4, 20, gaugeText)

	if spec.Reference != nil {
		text, color := formatDelta(spec.Value-*spec.Reference, spec.Decimals)
		drawCentered(r, text, g.cx, g.cy+24, 12, color)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to encode gauge",
			goerr.V("title", title),
			goerr.T(model.ErrTagRenderFailed))
	}
	return buf.Bytes(), nil
}

// drawCentered writes text horizontally centered on x with its baseline at y
func drawCentered(r gochart.Renderer, text string, x, y int, size float64, color drawing.Color) {
	r.SetFontSize(size)
	r.SetFontColor(color)
	box := r.MeasureText(text)
	r.Text(text, x-box.Width()/2, y)
}
