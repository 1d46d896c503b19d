package model

// Canvas of the report page in millimetres (landscape A4)
const (
	PageWidth  = 297.0
	PageHeight = 210.0
)

// TextAlign is the horizontal alignment of a text cell
type TextAlign string

const (
	AlignLeft   TextAlign = "L"
	AlignCenter TextAlign = "C"
)

// TextPlacement is a single-line text cell on the page
type TextPlacement struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
	Align    TextAlign
	Text     string
}

// ImagePlacement places one artifact on the page. Row is the member grid row,
// or -1 for images outside the grid.
type ImagePlacement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Row    int
	Ref    ArtifactRef
}

// Right returns the x coordinate of the right edge
func (p ImagePlacement) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the y coordinate of the bottom edge
func (p ImagePlacement) Bottom() float64 {
	return p.Y + p.Height
}

// PageLayout is a composed single page. Coordinates are in millimetres with the
// origin at the top-left corner.
type PageLayout struct {
	Width   float64
	Height  float64
	Texts   []TextPlacement
	Images  []ImagePlacement
	Dropped int // member gauges that did not fit into the grid
}

// Row returns the grid placements of a member gauge row in order
func (l *PageLayout) Row(row int) []ImagePlacement {
	var result []ImagePlacement
	for _, p := range l.Images {
		if p.Ref.Role == RoleMemberGauge && p.Row == row {
			result = append(result, p)
		}
	}
	return result
}

// Find returns the placement of an artifact
func (l *PageLayout) Find(ref ArtifactRef) (ImagePlacement, bool) {
	for _, p := range l.Images {
		if p.Ref == ref {
			return p, true
		}
	}
	return ImagePlacement{}, false
}

const overflowTolerance = 0.01

// Overflows returns placements whose bounding box leaves the canvas
func (l *PageLayout) Overflows() []ImagePlacement {
	var result []ImagePlacement
	for _, p := range l.Images {
		if p.X < -overflowTolerance || p.Y < -overflowTolerance ||
			p.Right() > l.Width+overflowTolerance || p.Bottom() > l.Height+overflowTolerance {
			result = append(result, p)
		}
	}
	return result
}
