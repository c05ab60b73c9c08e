package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paie-detect-be/internal/constant"
	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/blobstore"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/repository/specification"
	"paie-detect-be/internal/repository/unitofwork"
	"paie-detect-be/pkg/llm"
	"paie-detect-be/pkg/oracle"
	"paie-detect-be/pkg/reconcile"
	"paie-detect-be/pkg/refdata"

	"github.com/google/uuid"
)

type IAnalysisService interface {
	Analyze(ctx context.Context, fileId uuid.UUID) (*dto.AnalysisTeaserResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AnalysisTeaserResponse, error)
}

type AnalysisConfig struct {
	Model     string
	MaxTokens int
}

type analysisService struct {
	uowFactory unitofwork.RepositoryFactory
	blobs      blobstore.Store
	vision     llm.LLMProvider
	reference  *refdata.Table
	cfg        AnalysisConfig
	logger     logger.ILogger
	now        func() time.Time
}

func NewAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	blobs blobstore.Store,
	vision llm.LLMProvider,
	reference *refdata.Table,
	cfg AnalysisConfig,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		uowFactory: uowFactory,
		blobs:      blobs,
		vision:     vision,
		reference:  reference,
		cfg:        cfg,
		logger:     log,
		now:        time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, fileId uuid.UUID) (*dto.AnalysisTeaserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.FileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("%w: fichier %s", ErrNotFound, fileId)
	}

	data, err := s.blobs.Open(ctx, file.BlobKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrBlobNotFound) {
			return nil, fmt.Errorf("%w: contenu du fichier %s", ErrNotFound, fileId)
		}
		return nil, err
	}

	mediaType := DetectMediaType(data, file.FileType)
	reference := s.reference.RenderContext(refdata.ContextOptions{IncludeAll: true, Region: "idf"})

	start := s.now()
	answer, err := s.vision.Chat(ctx, []llm.Message{{
		Role:        constant.LLMRoleUser,
		Content:     fmt.Sprintf(constant.AnalysisInstructionsPrompt, reference),
		Attachments: []llm.Attachment{{MediaType: mediaType, Data: data}},
	}},
		llm.WithSystem(constant.AnalysisSystemPrompt),
		llm.WithModel(s.cfg.Model),
		llm.WithMaxTokens(s.cfg.MaxTokens),
	)
	if err != nil {
		s.logger.Error("ANALYSIS", "Vision model call failed", map[string]interface{}{
			"file_id":    fileId.String(),
			"media_type": mediaType,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	var record reconcile.Record
	switch outcome := oracle.Parse(answer).(type) {
	case oracle.ExtractionFailed:
		s.logger.Error("ANALYSIS", "Model answer is not a JSON object", map[string]interface{}{
			"file_id":  fileId.String(),
			"reason":   outcome.Reason,
			"raw_text": outcome.RawText,
		})
		return nil, outcome.Err()
	case oracle.ParsedCandidate:
		record = reconcile.Normalize(outcome.Candidate)
	}

	analysis := &entity.Analysis{
		Id:         uuid.New(),
		FileId:     &file.Id,
		Record:     record,
		AnalyzedAt: s.now(),
	}
	if err := uow.AnalysisRepository().Create(ctx, analysis); err != nil {
		return nil, err
	}

	s.logger.Info("ANALYSIS", "Payslip analysed", map[string]interface{}{
		"analysis_id":      analysis.Id.String(),
		"file_id":          fileId.String(),
		"status":           record.Status,
		"nombre_anomalies": record.AnomalyCount,
		"gain_annuel":      record.AnnualGain,
		"tier":             record.Tier,
		"duration_ms":      s.now().Sub(start).Milliseconds(),
	})

	return toTeaser(analysis), nil
}

func (s *analysisService) Show(ctx context.Context, id uuid.UUID) (*dto.AnalysisTeaserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	analysis, err := uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, fmt.Errorf("%w: analyse %s", ErrNotFound, id)
	}
	return toTeaser(analysis), nil
}

func toTeaser(a *entity.Analysis) *dto.AnalysisTeaserResponse {
	r := a.Record
	return &dto.AnalysisTeaserResponse{
		AnalysisId:         a.Id.String(),
		Status:             r.Status,
		Conformant:         r.Conformant,
		AnomalyCount:       r.AnomalyCount,
		MonthlyGain:        r.MonthlyGain,
		AnnualGain:         r.AnnualGain,
		TotalPotentialGain: r.TotalPotentialGain,
		TenureMonths:       r.TenureMonths,
		ClaimableMonths:    r.ClaimableMonths,
		AnnualSalaryPct:    r.AnnualSalaryPct,
		TotalSalaryPct:     r.TotalSalaryPct,
		Tier:               r.Tier,
		ReportPrice:        r.ReportPrice,
		PayslipPeriod:      r.PayslipPeriod,
		TeaserMessage:      r.TeaserMessage,
		Anomalies:          r.Anomalies,
		AttentionPoints:    r.AttentionPoints,
		ReportSent:         a.ReportSent,
		AnalyzedAt:         a.AnalyzedAt,
	}
}
