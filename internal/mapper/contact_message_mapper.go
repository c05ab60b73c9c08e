package mapper

import (
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
)

type ContactMessageMapper struct{}

func NewContactMessageMapper() *ContactMessageMapper {
	return &ContactMessageMapper{}
}

func (m *ContactMessageMapper) ToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		IPAddress: c.IPAddress,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMessageMapper) ToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		IPAddress: c.IPAddress,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMessageMapper) ToEntities(messages []*model.ContactMessage) []*entity.ContactMessage {
	entities := make([]*entity.ContactMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
