// Package pdf draws a composed page layout into a PDF document.
package pdf

import (
	"bytes"
	"context"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

const (
	fontFamily = "Arial"
	creator    = "casegauge"
)

// Writer renders a PageLayout and its artifacts into PDF bytes
type Writer struct {
	now func() time.Time
}

// Option configures Writer
type Option func(*Writer)

// WithClock sets the clock used for the document creation date. A fixed clock
// makes the output byte-for-byte reproducible.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// New creates a PDF writer
func New(opts ...Option) *Writer {
	w := &Writer{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write produces a single landscape A4 page. Every image placement must have a
// matching artifact.
func (x *Writer) Write(ctx context.Context, layout *model.PageLayout, artifacts []model.ChartArtifact) ([]byte, error) {
	if layout == nil {
		return nil, goerr.New("layout is required", goerr.T(model.ErrTagInvalidInput))
	}

	images := make(map[model.ArtifactRef]*model.ChartArtifact, len(artifacts))
	for i := range artifacts {
		images[artifacts[i].Ref()] = &artifacts[i]
	}

	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetCreationDate(x.now())
	doc.SetTitle(model.ReportTitle, false)
	doc.SetCreator(creator, false)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, t := range layout.Texts {
		doc.SetFont(fontFamily, "", t.FontSize)
		doc.SetXY(t.X, t.Y)
		doc.CellFormat(t.Width, t.Height, tr(t.Text), "", 0, string(t.Align), false, 0, "")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	for _, p := range layout.Images {
		a, ok := images[p.Ref]
		if !ok || len(a.Image) == 0 {
			return nil, goerr.New("no image for placement",
				goerr.V("artifact", p.Ref.String()),
				goerr.T(model.ErrTagMissingArtifact))
		}

		name := p.Ref.String()
		doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(a.Image))
		if err := doc.Error(); err != nil {
			return nil, goerr.Wrap(err, "failed to register image",
				goerr.V("artifact", name),
				goerr.T(model.ErrTagRenderFailed))
		}
		doc.ImageOptions(name, p.X, p.Y, p.Width, p.Height, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to output PDF", goerr.T(model.ErrTagRenderFailed))
	}

	ctxlog.From(ctx).Debug("PDF written",
		"texts", len(layout.Texts),
		"images", len(layout.Images),
		"bytes", buf.Len())

	return buf.Bytes(), nil
}
