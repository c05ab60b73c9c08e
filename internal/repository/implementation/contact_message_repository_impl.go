package implementation

import (
	"context"

	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/mapper"
	"paie-detect-be/internal/model"
	"paie-detect-be/internal/repository/contract"
	"paie-detect-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContactMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMessageMapper
}

func NewContactMessageRepository(db *gorm.DB) contract.ContactMessageRepository {
	return &ContactMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMessageMapper(),
	}
}

func (r *ContactMessageRepositoryImpl) Create(ctx context.Context, message *entity.ContactMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var models []*model.ContactMessage
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
