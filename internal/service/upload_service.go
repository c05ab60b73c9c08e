package service

import (
	"context"
	"fmt"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/pkg/blobstore"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUploadService interface {
	Upload(ctx context.Context, fileName, declaredType string, data []byte) (*dto.UploadResponse, error)
}

type uploadService struct {
	uowFactory unitofwork.RepositoryFactory
	blobs      blobstore.Store
	logger     logger.ILogger
	now        func() time.Time
}

func NewUploadService(uowFactory unitofwork.RepositoryFactory, blobs blobstore.Store, log logger.ILogger) IUploadService {
	return &uploadService{
		uowFactory: uowFactory,
		blobs:      blobs,
		logger:     log,
		now:        time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, fileName, declaredType string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: aucun fichier fourni", ErrInvalidInput)
	}

	key, err := s.blobs.Save(ctx, fileName, data)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(entity.FileRetention)
	file := &entity.File{
		Id:         uuid.New(),
		BlobKey:    key,
		FileName:   fileName,
		FileType:   DetectMediaType(data, declaredType),
		FileSize:   int64(len(data)),
		UploadedAt: now,
		ExpiresAt:  &expiresAt,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FileRepository().Create(ctx, file); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("UPLOAD", "Failed to remove orphan blob", map[string]interface{}{"blob_key": key, "error": delErr.Error()})
		}
		return nil, err
	}

	s.logger.Info("UPLOAD", "File stored", map[string]interface{}{
		"file_id":       file.Id.String(),
		"file_type":     file.FileType,
		"declared_type": declaredType,
		"file_size":     file.FileSize,
	})

	return &dto.UploadResponse{
		FileId:     file.Id.String(),
		FileName:   file.FileName,
		FileType:   file.FileType,
		FileSize:   file.FileSize,
		UploadedAt: file.UploadedAt,
	}, nil
}
