package dto

import "time"

// LeadCapturedMessage is published once a detailed report was generated for
// a visitor.
type LeadCapturedMessage struct {
	AnalysisId         string    `json:"analysis_id"`
	FirstName          string    `json:"prenom"`
	Email              string    `json:"email"`
	TotalPotentialGain float64   `json:"gain_total_potentiel"`
	ReportPrice        int       `json:"prix_rapport"`
	Source             string    `json:"source"`
	OccurredAt         time.Time `json:"occurred_at"`
}
