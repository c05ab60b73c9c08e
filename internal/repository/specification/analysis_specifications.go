package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WithRecipient keeps analyses for which a visitor left an email.
type WithRecipient struct{}

func (s WithRecipient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email IS NOT NULL")
}

type ByFile struct {
	FileID uuid.UUID
}

func (s ByFile) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_id = ?", s.FileID)
}

type ByAnalysis struct {
	AnalysisID uuid.UUID
}

func (s ByAnalysis) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("analysis_id = ?", s.AnalysisID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
