package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type Announcement struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title string    `gorm:"not null"`
	Body  string

	IsPublished bool `gorm:"default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
