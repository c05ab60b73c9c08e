package dto

import "time"

type AdminAnalysisItem struct {
	Id                 string     `json:"id"`
	FirstName          string     `json:"user_prenom"`
	Email              string     `json:"user_email"`
	AnomalyCount       int        `json:"nombre_anomalies"`
	MonthlyGain        float64    `json:"gain_mensuel"`
	AnnualGain         float64    `json:"gain_annuel"`
	TotalPotentialGain float64    `json:"gain_total_potentiel"`
	TenureMonths       int        `json:"anciennete_mois"`
	ClaimableMonths    int        `json:"periode_reclamable_mois"`
	NetMonthlySalary   float64    `json:"salaire_net_mensuel"`
	AnnualSalaryPct    float64    `json:"pourcentage_salaire_annuel"`
	TotalSalaryPct     float64    `json:"pourcentage_salaire_total"`
	ReportPrice        int        `json:"prix_rapport"`
	PayslipPeriod      string     `json:"periode_bulletin"`
	TeaserMessage      string     `json:"message_teaser"`
	Reasoning          string     `json:"raisonnement"`
	Status             string     `json:"status"`
	ReportSent         bool       `json:"report_sent"`
	ReportSentAt       *time.Time `json:"report_sent_at"`
	AnalyzedAt         time.Time  `json:"analyzed_at"`
	FileId             *string    `json:"file_id"`
	FileName           string     `json:"file_name,omitempty"`
	FileExpiresAt      *time.Time `json:"expires_at"`
	FileDeletedAt      *time.Time `json:"deleted_at"`
}

type AdminAnalysesResponse struct {
	Analyses []AdminAnalysisItem `json:"analyses"`
	Total    int64               `json:"total"`
	Offset   int                 `json:"offset"`
}

type AdminLogsResponse struct {
	Logs   interface{} `json:"logs"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
