package report

import "fmt"

// Artifact names used in ReportWriteError.
const (
	ArtifactChart = "chart"
	ArtifactPDF   = "pdf"
)

// ReportWriteError reports that a report artifact could not be rendered or
// written. The run stops at the failing artifact.
type ReportWriteError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("writing %s to %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *ReportWriteError) Unwrap() error { return e.Err }
