package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"paie-detect-be/internal/constant"
	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/mailer"
	"paie-detect-be/internal/repository/specification"
	"paie-detect-be/internal/repository/unitofwork"
	"paie-detect-be/pkg/llm"
	"paie-detect-be/pkg/oracle"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type IReportService interface {
	SendReport(ctx context.Context, req *dto.SendReportRequest) (*dto.SendReportResponse, error)
}

type ReportConfig struct {
	Model     string
	MaxTokens int
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	text       llm.LLMProvider
	publisher  IPublisherService
	mailer     mailer.IEmailService
	cfg        ReportConfig
	logger     logger.ILogger
	now        func() time.Time
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	text llm.LLMProvider,
	publisher IPublisherService,
	emailService mailer.IEmailService,
	cfg ReportConfig,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		text:       text,
		publisher:  publisher,
		mailer:     emailService,
		cfg:        cfg,
		logger:     log,
		now:        time.Now,
	}
}

func (s *reportService) SendReport(ctx context.Context, req *dto.SendReportRequest) (*dto.SendReportResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	email := strings.TrimSpace(req.Email)

	if !ValidFirstName(firstName) {
		return nil, fmt.Errorf("%w: prénom invalide (2 à 50 caractères, sans chiffre ni @)", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: email invalide", ErrInvalidInput)
	}
	analysisId, err := uuid.Parse(req.AnalysisId)
	if err != nil {
		return nil, fmt.Errorf("%w: identifiant d'analyse invalide", ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	analysis, err := uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: analysisId})
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, fmt.Errorf("%w: analyse %s", ErrNotFound, analysisId)
	}
	if analysis.ReportSent {
		return nil, ErrReportAlreadySent
	}
	if !analysis.Reportable() {
		return nil, ErrNothingToReport
	}

	report, err := s.generate(ctx, analysis)
	if err != nil {
		return nil, err
	}

	updated, err := uow.AnalysisRepository().MarkReportSent(ctx, analysis.Id, firstName, email, report, s.now())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrReportAlreadySent
	}

	r := analysis.Record
	lead := dto.LeadCapturedMessage{
		AnalysisId:         analysis.Id.String(),
		FirstName:          firstName,
		Email:              email,
		TotalPotentialGain: r.TotalPotentialGain,
		ReportPrice:        r.ReportPrice,
		Source:             entity.LeadSourceLaunchOffer,
		OccurredAt:         s.now(),
	}
	if err := s.publisher.PublishLeadCaptured(ctx, lead); err != nil {
		s.logger.Warn("REPORT", "Failed to publish lead", map[string]interface{}{"analysis_id": analysis.Id.String(), "error": err.Error()})
	}

	err = s.mailer.SendReport(mailer.ReportMail{
		FirstName:     firstName,
		Email:         email,
		PayslipPeriod: r.PayslipPeriod,
		AnomalyCount:  r.AnomalyCount,
		MonthlyGain:   r.MonthlyGain,
		AnnualGain:    r.AnnualGain,
		TotalGain:     r.TotalPotentialGain,
		Report:        report,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.logger.Info("REPORT", "Detailed report sent", map[string]interface{}{"analysis_id": analysis.Id.String()})
	return &dto.SendReportResponse{AlreadySent: false}, nil
}

func (s *reportService) generate(ctx context.Context, analysis *entity.Analysis) (*dto.DetailedReport, error) {
	r := analysis.Record
	anomalies, err := json.Marshal(r.Anomalies)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(constant.DetailedReportPrompt,
		truncateRunes(r.Reasoning, constant.ReasoningExcerptLimit),
		anomalies,
		r.MonthlyGain,
		r.AnnualGain,
		r.TotalPotentialGain,
	)

	answer, err := s.text.Generate(ctx, prompt, llm.WithModel(s.cfg.Model), llm.WithMaxTokens(s.cfg.MaxTokens))
	if err != nil {
		s.logger.Error("REPORT", "Report model call failed", map[string]interface{}{"analysis_id": analysis.Id.String(), "error": err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	var report dto.DetailedReport
	if err := oracle.ParseInto(answer, &report); err != nil {
		s.logger.Error("REPORT", "Report answer is not a JSON object", map[string]interface{}{
			"analysis_id": analysis.Id.String(),
			"error":       err.Error(),
			"raw_text":    answer,
		})
		return nil, err
	}
	return &report, nil
}

// ValidFirstName accepts 2 to 50 characters with no digit and no '@'.
func ValidFirstName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < 2 || n > 50 {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == '@' || unicode.IsDigit(r)
	})
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
