package contract

import (
	"context"

	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/repository/specification"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	Update(ctx context.Context, file *entity.File) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.File, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.File, error)
}
