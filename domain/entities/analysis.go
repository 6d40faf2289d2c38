package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus represents the lifecycle stage of an analysis job
type AnalysisStatus string

const (
	AnalysisStatusPending     AnalysisStatus = "pending"
	AnalysisStatusExtracting  AnalysisStatus = "extracting"
	AnalysisStatusRecognizing AnalysisStatus = "recognizing"
	AnalysisStatusClassifying AnalysisStatus = "classifying"
	AnalysisStatusCompleted   AnalysisStatus = "completed"
	AnalysisStatusFailed      AnalysisStatus = "failed"
)

// AnalysisSource represents how the media was provided
type AnalysisSource string

const (
	AnalysisSourceURL    AnalysisSource = "url"
	AnalysisSourceUpload AnalysisSource = "upload"
)

// Analysis represents a single accent analysis job, from media intake to
// the final accent report
type Analysis struct {
	ID         string         `json:"id" bson:"_id"`
	Source     AnalysisSource `json:"source" bson:"source"`
	SourceName string         `json:"source_name" bson:"source_name"`
	Status     AnalysisStatus `json:"status" bson:"status"`
	Report     *AccentReport  `json:"report,omitempty" bson:"report,omitempty"`
	Error      string         `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
}

// NewAnalysis creates a new pending analysis job
func NewAnalysis(source AnalysisSource, sourceName string) *Analysis {
	now := time.Now()
	return &Analysis{
		ID:         uuid.New().String(),
		Source:     source,
		SourceName: sourceName,
		Status:     AnalysisStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetStatus moves the analysis to a new lifecycle stage
func (a *Analysis) SetStatus(status AnalysisStatus) {
	a.Status = status
	a.UpdatedAt = time.Now()
}

// Complete attaches the final accent report and marks the job completed
func (a *Analysis) Complete(report *AccentReport) {
	a.Report = report
	a.Status = AnalysisStatusCompleted
	a.UpdatedAt = time.Now()
}

// Fail marks the job failed with the given reason
func (a *Analysis) Fail(reason string) {
	a.Error = reason
	a.Status = AnalysisStatusFailed
	a.UpdatedAt = time.Now()
}

// Validate checks that the analysis describes a usable media source
func (a *Analysis) Validate() error {
	if a.Source != AnalysisSourceURL && a.Source != AnalysisSourceUpload {
		return errors.New("source must be url or upload")
	}
	if a.SourceName == "" {
		return errors.New("source name is required")
	}
	return nil
}
