package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName          string    `gorm:"column:prenom;type:varchar(50);not null"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_leads_analysis_email"`
	AnalysisId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leads_analysis_email"`
	TotalPotentialGain float64   `gorm:"column:gain_total_potentiel;type:numeric(12,2)"`
	ReportPrice        int       `gorm:"column:prix_rapport"`
	Source             string    `gorm:"type:varchar(50)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
