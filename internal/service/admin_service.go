package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/blobstore"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/repository/specification"
	"paie-detect-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const AdminPageSize = 50

type FileDownload struct {
	FileName string
	FileType string
	Data     []byte
}

type IAdminService interface {
	ListAnalyses(ctx context.Context, offset int) (*dto.AdminAnalysesResponse, error)
	DownloadFile(ctx context.Context, fileId uuid.UUID) (*FileDownload, error)
	GetLogs(level string, limit, offset int) (*dto.AdminLogsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	blobs      blobstore.Store
	logger     logger.ILogger
	now        func() time.Time
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, blobs blobstore.Store, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		blobs:      blobs,
		logger:     log,
		now:        time.Now,
	}
}

func (s *adminService) ListAnalyses(ctx context.Context, offset int) (*dto.AdminAnalysesResponse, error) {
	if offset < 0 {
		offset = 0
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	analyses, err := uow.AnalysisRepository().FindAll(ctx,
		specification.WithRecipient{},
		specification.OrderBy{Field: "analyzed_at", Desc: true},
		specification.Pagination{Limit: AdminPageSize, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	total, err := uow.AnalysisRepository().Count(ctx, specification.WithRecipient{})
	if err != nil {
		return nil, err
	}

	var fileIds []uuid.UUID
	for _, a := range analyses {
		if a.FileId != nil {
			fileIds = append(fileIds, *a.FileId)
		}
	}
	files := map[uuid.UUID]*entity.File{}
	if len(fileIds) > 0 {
		found, err := uow.FileRepository().FindAll(ctx, specification.ByIDs{IDs: fileIds})
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			files[f.Id] = f
		}
	}

	items := make([]dto.AdminAnalysisItem, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, toAdminItem(a, files))
	}

	return &dto.AdminAnalysesResponse{Analyses: items, Total: total, Offset: offset}, nil
}

func (s *adminService) DownloadFile(ctx context.Context, fileId uuid.UUID) (*FileDownload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.FileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("%w: fichier %s", ErrNotFound, fileId)
	}
	if !file.Available(s.now()) {
		return nil, ErrFileExpired
	}

	data, err := s.blobs.Open(ctx, file.BlobKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrBlobNotFound) {
			return nil, ErrFileExpired
		}
		return nil, err
	}

	s.logger.Info("ADMIN", "File downloaded", map[string]interface{}{"file_id": fileId.String()})
	return &FileDownload{FileName: file.FileName, FileType: file.FileType, Data: data}, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) (*dto.AdminLogsResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLogsResponse{Logs: logs, Limit: limit, Offset: offset}, nil
}

func toAdminItem(a *entity.Analysis, files map[uuid.UUID]*entity.File) dto.AdminAnalysisItem {
	r := a.Record
	item := dto.AdminAnalysisItem{
		Id:                 a.Id.String(),
		AnomalyCount:       r.AnomalyCount,
		MonthlyGain:        r.MonthlyGain,
		AnnualGain:         r.AnnualGain,
		TotalPotentialGain: r.TotalPotentialGain,
		TenureMonths:       r.TenureMonths,
		ClaimableMonths:    r.ClaimableMonths,
		NetMonthlySalary:   r.NetMonthlySalary,
		AnnualSalaryPct:    r.AnnualSalaryPct,
		TotalSalaryPct:     r.TotalSalaryPct,
		ReportPrice:        r.ReportPrice,
		PayslipPeriod:      r.PayslipPeriod,
		TeaserMessage:      r.TeaserMessage,
		Reasoning:          r.Reasoning,
		Status:             r.Status,
		ReportSent:         a.ReportSent,
		ReportSentAt:       a.ReportSentAt,
		AnalyzedAt:         a.AnalyzedAt,
	}
	if a.FirstName != nil {
		item.FirstName = *a.FirstName
	}
	if a.Email != nil {
		item.Email = *a.Email
	}
	if a.FileId != nil {
		id := a.FileId.String()
		item.FileId = &id
		if f, ok := files[*a.FileId]; ok {
			item.FileName = f.FileName
			item.FileExpiresAt = f.ExpiresAt
			item.FileDeletedAt = f.PurgedAt
		}
	}
	return item
}
