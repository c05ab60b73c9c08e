package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	CreatedAt time.Time
}
