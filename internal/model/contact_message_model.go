package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(100);not null"`
	Subject   string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	IPAddress string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
