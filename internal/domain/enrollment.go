package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

type Enrollment struct {
	StudentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	EnrolledAt time.Time

	ProgressPercent int32  `gorm:"default:0"`
	Status          string `gorm:"default:'active'"` // "active", "completed"
	LastAccessedAt  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Старая таблица записей. Пишем в обе, пока с нее читают легаси-клиенты.
type LegacyEnrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID  uuid.UUID `gorm:"type:uuid;index"`
	CourseID   uuid.UUID `gorm:"type:uuid;index"`
	EnrolledAt time.Time
}

func (LegacyEnrollment) TableName() string {
	return "course_enrollments"
}

// Курс студента для дашборда
type EnrolledCourse struct {
	Enrollment
	Title    string
	CoverURL string
	Category string
}
