package entity

import (
	"time"

	"github.com/google/uuid"
)

const LeadSourceLaunchOffer = "offre_lancement"

type Lead struct {
	Id                 uuid.UUID
	FirstName          string
	Email              string
	AnalysisId         uuid.UUID
	TotalPotentialGain float64
	ReportPrice        int
	Source             string
	CreatedAt          time.Time
}
