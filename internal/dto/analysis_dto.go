package dto

import (
	"time"

	"paie-detect-be/pkg/reconcile"
)

type AnalyzeRequest struct {
	FileId string `json:"file_id" validate:"required,uuid"`
}

// AnalysisTeaserResponse is what a visitor sees before leaving contact
// details: totals and vague anomaly summaries, no detailed report.
type AnalysisTeaserResponse struct {
	AnalysisId         string                     `json:"analysis_id"`
	Status             string                     `json:"status"`
	Conformant         bool                       `json:"bulletin_conforme"`
	AnomalyCount       int                        `json:"nombre_anomalies"`
	MonthlyGain        float64                    `json:"gain_mensuel"`
	AnnualGain         float64                    `json:"gain_annuel"`
	TotalPotentialGain float64                    `json:"gain_total_potentiel"`
	TenureMonths       int                        `json:"anciennete_mois"`
	ClaimableMonths    int                        `json:"periode_reclamable_mois"`
	AnnualSalaryPct    float64                    `json:"pourcentage_salaire_annuel"`
	TotalSalaryPct     float64                    `json:"pourcentage_salaire_total"`
	Tier               string                     `json:"tier"`
	ReportPrice        int                        `json:"prix_rapport"`
	PayslipPeriod      string                     `json:"periode_bulletin"`
	TeaserMessage      string                     `json:"message_teaser"`
	Anomalies          []reconcile.AnomalySummary `json:"anomalies_resume"`
	AttentionPoints    []string                   `json:"points_attention"`
	ReportSent         bool                       `json:"report_sent"`
	AnalyzedAt         time.Time                  `json:"analyzed_at"`
}
