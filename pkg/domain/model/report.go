package model

// Fixed properties of the exported document
const (
	ReportTitle       = "FSC Performance Report"
	ReportFileName    = "fsc_performance_report.pdf"
	ReportContentType = "application/pdf"
)

// ExportedReport is a finished document ready for download
type ExportedReport struct {
	FileName    string
	ContentType string
	Data        []byte
	Layout      *PageLayout
}

// Dashboard is the on-screen view of a report
type Dashboard struct {
	Input     *ReportInput
	Metrics   *DerivedMetrics
	Artifacts []ChartArtifact
}

// ArtifactsByRole returns the artifacts of one role in index order
func (d *Dashboard) ArtifactsByRole(role ArtifactRole) []ChartArtifact {
	var result []ChartArtifact
	for _, a := range d.Artifacts {
		if a.Role == role {
			result = append(result, a)
		}
	}
	return result
}
