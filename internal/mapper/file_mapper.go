package mapper

import (
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.File) *entity.File {
	if f == nil {
		return nil
	}
	return &entity.File{
		Id:         f.Id,
		BlobKey:    f.BlobKey,
		FileName:   f.FileName,
		FileType:   f.FileType,
		FileSize:   f.FileSize,
		UploadedAt: f.UploadedAt,
		ExpiresAt:  f.ExpiresAt,
		PurgedAt:   f.PurgedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.File) *model.File {
	if f == nil {
		return nil
	}
	return &model.File{
		Id:         f.Id,
		BlobKey:    f.BlobKey,
		FileName:   f.FileName,
		FileType:   f.FileType,
		FileSize:   f.FileSize,
		UploadedAt: f.UploadedAt,
		ExpiresAt:  f.ExpiresAt,
		PurgedAt:   f.PurgedAt,
	}
}

func (m *FileMapper) ToEntities(files []*model.File) []*entity.File {
	entities := make([]*entity.File, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
