package model

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BlobKey    string     `gorm:"column:blob_url;type:text;not null"`
	FileName   string     `gorm:"type:varchar(255);not null"`
	FileType   string     `gorm:"type:varchar(100);not null"`
	FileSize   int64      `gorm:"not null"`
	UploadedAt time.Time  `gorm:"autoCreateTime"`
	ExpiresAt  *time.Time `gorm:"index"`
	PurgedAt   *time.Time `gorm:"column:deleted_at"`
}

func (File) TableName() string {
	return "files"
}
