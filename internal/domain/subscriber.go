package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

type Subscriber struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email string    `gorm:"uniqueIndex;not null;size:100"`

	IsActive bool `gorm:"default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
