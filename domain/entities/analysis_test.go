package entities

import (
	"testing"
)

func TestNewAnalysis(t *testing.T) {
	analysis := NewAnalysis(AnalysisSourceURL, "https://example.com/clip.mp4")

	if analysis.ID == "" {
		t.Error("Expected analysis ID to be generated")
	}
	if analysis.Source != AnalysisSourceURL {
		t.Errorf("Expected source %s, got %s", AnalysisSourceURL, analysis.Source)
	}
	if analysis.SourceName != "https://example.com/clip.mp4" {
		t.Errorf("Expected source name to be preserved, got %s", analysis.SourceName)
	}
	if analysis.Status != AnalysisStatusPending {
		t.Errorf("Expected status %s, got %s", AnalysisStatusPending, analysis.Status)
	}
	if analysis.Report != nil {
		t.Error("Expected new analysis to have no report")
	}
	if analysis.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if !analysis.UpdatedAt.Equal(analysis.CreatedAt) {
		t.Error("Expected UpdatedAt to equal CreatedAt on creation")
	}
}

func TestAnalysisSetStatus(t *testing.T) {
	analysis := NewAnalysis(AnalysisSourceUpload, "clip.mp4")
	before := analysis.UpdatedAt

	analysis.SetStatus(AnalysisStatusExtracting)

	if analysis.Status != AnalysisStatusExtracting {
		t.Errorf("Expected status %s, got %s", AnalysisStatusExtracting, analysis.Status)
	}
	if analysis.UpdatedAt.Before(before) {
		t.Error("Expected UpdatedAt to advance")
	}
}

func TestAnalysisComplete(t *testing.T) {
	analysis := NewAnalysis(AnalysisSourceURL, "https://example.com/clip.mp4")
	report := &AccentReport{
		AccentClassification:      "British",
		ConfidenceInEnglishAccent: 87,
	}

	analysis.Complete(report)

	if analysis.Status != AnalysisStatusCompleted {
		t.Errorf("Expected status %s, got %s", AnalysisStatusCompleted, analysis.Status)
	}
	if analysis.Report == nil || analysis.Report.AccentClassification != "British" {
		t.Error("Expected completed analysis to carry the report")
	}
	if analysis.Error != "" {
		t.Errorf("Expected no error on completed analysis, got %s", analysis.Error)
	}
}

func TestAnalysisFail(t *testing.T) {
	analysis := NewAnalysis(AnalysisSourceURL, "https://example.com/clip.mp4")

	analysis.Fail("audio extraction failed")

	if analysis.Status != AnalysisStatusFailed {
		t.Errorf("Expected status %s, got %s", AnalysisStatusFailed, analysis.Status)
	}
	if analysis.Error != "audio extraction failed" {
		t.Errorf("Expected failure reason to be preserved, got %s", analysis.Error)
	}
	if analysis.Report != nil {
		t.Error("Expected failed analysis to have no report")
	}
}

func TestAnalysisValidate(t *testing.T) {
	valid := NewAnalysis(AnalysisSourceUpload, "clip.mp4")
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid analysis to pass validation, got %v", err)
	}

	badSource := NewAnalysis("stream", "clip.mp4")
	if err := badSource.Validate(); err == nil {
		t.Error("Expected validation error for unknown source")
	}

	noName := NewAnalysis(AnalysisSourceURL, "")
	if err := noName.Validate(); err == nil {
		t.Error("Expected validation error for empty source name")
	}
}
