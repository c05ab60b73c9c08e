package contract

import (
	"context"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.Analysis) error
	// MarkReportSent stores the report and recipient on an analysis whose
	// report was not sent yet. It reports false when nothing was updated.
	MarkReportSent(ctx context.Context, id uuid.UUID, firstName, email string, report *dto.DetailedReport, sentAt time.Time) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Analysis, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Analysis, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
