package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Analysis struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FileId             *uuid.UUID     `gorm:"type:uuid;index"`
	Status             string         `gorm:"type:varchar(32);not null"`
	Conformant         bool           `gorm:"column:bulletin_conforme;not null"`
	AnomalyCount       int            `gorm:"column:nombre_anomalies;not null"`
	MonthlyGain        float64        `gorm:"column:gain_mensuel;type:numeric(12,2)"`
	AnnualGain         float64        `gorm:"column:gain_annuel;type:numeric(12,2)"`
	TotalPotentialGain float64        `gorm:"column:gain_total_potentiel;type:numeric(12,2)"`
	TenureMonths       int            `gorm:"column:anciennete_mois"`
	ClaimableMonths    int            `gorm:"column:periode_reclamable_mois"`
	NetMonthlySalary   float64        `gorm:"column:salaire_net_mensuel;type:numeric(12,2)"`
	AnnualSalaryPct    float64        `gorm:"column:pourcentage_salaire_annuel;type:numeric(8,2)"`
	TotalSalaryPct     float64        `gorm:"column:pourcentage_salaire_total;type:numeric(8,2)"`
	Tier               string         `gorm:"type:varchar(1)"`
	ReportPrice        int            `gorm:"column:prix_rapport"`
	PayslipPeriod      string         `gorm:"column:periode_bulletin;type:varchar(100)"`
	AnomaliesSummary   datatypes.JSON `gorm:"column:anomalies_resume"`
	TeaserMessage      string         `gorm:"column:message_teaser;type:text"`
	AttentionPoints    datatypes.JSON `gorm:"column:points_attention"`
	Reasoning          string         `gorm:"column:raw_ocr_text;type:text"`
	DetailedReport     datatypes.JSON `gorm:"column:rapport_complet"`
	FirstName          *string        `gorm:"column:user_prenom;type:varchar(50)"`
	Email              *string        `gorm:"column:user_email;type:varchar(255);index"`
	ReportSent         bool           `gorm:"not null;default:false"`
	ReportSentAt       *time.Time     `gorm:"column:report_sent_at"`
	AnalyzedAt         time.Time      `gorm:"autoCreateTime;index"`
}

func (Analysis) TableName() string {
	return "analyses"
}
