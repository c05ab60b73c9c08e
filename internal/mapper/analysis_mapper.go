package mapper

import (
	"encoding/json"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
	"paie-detect-be/pkg/reconcile"

	"gorm.io/datatypes"
)

type AnalysisMapper struct{}

func NewAnalysisMapper() *AnalysisMapper {
	return &AnalysisMapper{}
}

func (m *AnalysisMapper) ToEntity(a *model.Analysis) *entity.Analysis {
	if a == nil {
		return nil
	}

	var anomalies []reconcile.AnomalySummary
	_ = json.Unmarshal(a.AnomaliesSummary, &anomalies)
	if anomalies == nil {
		anomalies = []reconcile.AnomalySummary{}
	}

	var attention []string
	_ = json.Unmarshal(a.AttentionPoints, &attention)
	if attention == nil {
		attention = []string{}
	}

	var report *dto.DetailedReport
	if len(a.DetailedReport) > 0 && string(a.DetailedReport) != "null" {
		report = &dto.DetailedReport{}
		if err := json.Unmarshal(a.DetailedReport, report); err != nil {
			report = nil
		}
	}

	return &entity.Analysis{
		Id:     a.Id,
		FileId: a.FileId,
		Record: reconcile.Record{
			Status:             a.Status,
			Conformant:         a.Conformant,
			AnomalyCount:       a.AnomalyCount,
			MonthlyGain:        a.MonthlyGain,
			AnnualGain:         a.AnnualGain,
			TotalPotentialGain: a.TotalPotentialGain,
			TenureMonths:       a.TenureMonths,
			ClaimableMonths:    a.ClaimableMonths,
			NetMonthlySalary:   a.NetMonthlySalary,
			AnnualSalaryPct:    a.AnnualSalaryPct,
			TotalSalaryPct:     a.TotalSalaryPct,
			Tier:               a.Tier,
			ReportPrice:        a.ReportPrice,
			PayslipPeriod:      a.PayslipPeriod,
			Anomalies:          anomalies,
			TeaserMessage:      a.TeaserMessage,
			AttentionPoints:    attention,
			Reasoning:          a.Reasoning,
		},
		FirstName:      a.FirstName,
		Email:          a.Email,
		DetailedReport: report,
		ReportSent:     a.ReportSent,
		ReportSentAt:   a.ReportSentAt,
		AnalyzedAt:     a.AnalyzedAt,
	}
}

func (m *AnalysisMapper) ToModel(a *entity.Analysis) (*model.Analysis, error) {
	if a == nil {
		return nil, nil
	}
	r := a.Record

	anomalies, err := json.Marshal(nonNil(r.Anomalies))
	if err != nil {
		return nil, err
	}
	attention, err := json.Marshal(nonNil(r.AttentionPoints))
	if err != nil {
		return nil, err
	}

	var report datatypes.JSON
	if a.DetailedReport != nil {
		if report, err = json.Marshal(a.DetailedReport); err != nil {
			return nil, err
		}
	}

	return &model.Analysis{
		Id:                 a.Id,
		FileId:             a.FileId,
		Status:             r.Status,
		Conformant:         r.Conformant,
		AnomalyCount:       r.AnomalyCount,
		MonthlyGain:        r.MonthlyGain,
		AnnualGain:         r.AnnualGain,
		TotalPotentialGain: r.TotalPotentialGain,
		TenureMonths:       r.TenureMonths,
		ClaimableMonths:    r.ClaimableMonths,
		NetMonthlySalary:   r.NetMonthlySalary,
		AnnualSalaryPct:    r.AnnualSalaryPct,
		TotalSalaryPct:     r.TotalSalaryPct,
		Tier:               r.Tier,
		ReportPrice:        r.ReportPrice,
		PayslipPeriod:      r.PayslipPeriod,
		AnomaliesSummary:   anomalies,
		TeaserMessage:      r.TeaserMessage,
		AttentionPoints:    attention,
		Reasoning:          r.Reasoning,
		DetailedReport:     report,
		FirstName:          a.FirstName,
		Email:              a.Email,
		ReportSent:         a.ReportSent,
		ReportSentAt:       a.ReportSentAt,
		AnalyzedAt:         a.AnalyzedAt,
	}, nil
}

func (m *AnalysisMapper) ToEntities(analyses []*model.Analysis) []*entity.Analysis {
	entities := make([]*entity.Analysis, len(analyses))
	for i, a := range analyses {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
