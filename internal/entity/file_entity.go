package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileRetention is how long an uploaded payslip stays downloadable.
const FileRetention = 30 * 24 * time.Hour

type File struct {
	Id         uuid.UUID
	BlobKey    string
	FileName   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
	ExpiresAt  *time.Time
	PurgedAt   *time.Time
}

// Available reports whether the stored bytes may still be served at now.
func (f *File) Available(now time.Time) bool {
	if f.PurgedAt != nil {
		return false
	}
	return f.ExpiresAt == nil || now.Before(*f.ExpiresAt)
}
