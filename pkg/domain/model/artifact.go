package model

import "fmt"

// ArtifactRole is the semantic role of a rendered chart in the report
type ArtifactRole string

const (
	RoleTrend             ArtifactRole = "trend"
	RoleMemberGauge       ArtifactRole = "member_gauge"
	RoleMonthAverageGauge ArtifactRole = "month_average_gauge"
	RoleMonthTotalGauge   ArtifactRole = "month_total_gauge"
)

// String returns the string representation
func (r ArtifactRole) String() string {
	return string(r)
}

// ArtifactRef identifies an artifact by role and position within its role group
type ArtifactRef struct {
	Role  ArtifactRole
	Index int
}

// String returns a name unique within one report, e.g. "member_gauge_3"
func (r ArtifactRef) String() string {
	return fmt.Sprintf("%s_%d", r.Role, r.Index)
}

// ChartArtifact is a rendered chart image
type ChartArtifact struct {
	Role        ArtifactRole
	Index       int
	Title       string
	Image       []byte // PNG
	PixelWidth  int
	PixelHeight int
}

// Ref returns the artifact reference
func (a *ChartArtifact) Ref() ArtifactRef {
	return ArtifactRef{Role: a.Role, Index: a.Index}
}

// HeightFor returns the height that keeps the image aspect ratio at the given width
func (a *ChartArtifact) HeightFor(width float64) float64 {
	if a.PixelWidth <= 0 {
		return 0
	}
	return width * float64(a.PixelHeight) / float64(a.PixelWidth)
}
