package unitofwork

import (
	"context"

	"paie-detect-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FileRepository() contract.FileRepository
	AnalysisRepository() contract.AnalysisRepository
	LeadRepository() contract.LeadRepository
	ContactMessageRepository() contract.ContactMessageRepository
}
