package contract

import (
	"context"

	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/repository/specification"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
}
