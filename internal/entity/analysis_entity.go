package entity

import (
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/pkg/reconcile"

	"github.com/google/uuid"
)

type Analysis struct {
	Id     uuid.UUID
	FileId *uuid.UUID
	Record reconcile.Record

	FirstName      *string
	Email          *string
	DetailedReport *dto.DetailedReport
	ReportSent     bool
	ReportSentAt   *time.Time
	AnalyzedAt     time.Time
}

// Reportable reports whether a detailed report makes sense for this analysis.
func (a *Analysis) Reportable() bool {
	return !a.Record.Conformant && a.Record.AnomalyCount > 0
}
