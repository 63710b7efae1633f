package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCourseNotCompleted  = errors.New("course is not completed yet")
)

type Certificate struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SerialNo string    `gorm:"uniqueIndex;not null;size:32"`

	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cert_user_course"`
	CourseID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cert_user_course"`

	IssuedAt  time.Time
	CreatedAt time.Time
}
