package mapper

import (
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:                 l.Id,
		FirstName:          l.FirstName,
		Email:              l.Email,
		AnalysisId:         l.AnalysisId,
		TotalPotentialGain: l.TotalPotentialGain,
		ReportPrice:        l.ReportPrice,
		Source:             l.Source,
		CreatedAt:          l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:                 l.Id,
		FirstName:          l.FirstName,
		Email:              l.Email,
		AnalysisId:         l.AnalysisId,
		TotalPotentialGain: l.TotalPotentialGain,
		ReportPrice:        l.ReportPrice,
		Source:             l.Source,
		CreatedAt:          l.CreatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
