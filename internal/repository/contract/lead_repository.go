package contract

import (
	"context"

	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/repository/specification"
)

type LeadRepository interface {
	// CreateIfAbsent inserts the lead unless one exists for the same
	// analysis and email. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, lead *entity.Lead) (bool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
