package models

import "time"

// Scan is a saved skin-analysis result. The result fields are immutable
// after creation; rows are only inserted and listed.
type Scan struct {
	ID           string
	UserID       string
	AnalysisDate time.Time
	SkinType     string
	Concerns     []string
	Score        int
	Confidence   int
	Products     []string
	Treatments   []string
	HomeRemedies []string
	NeedsDoctor  bool
	ImageKey     string
}
