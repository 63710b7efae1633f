package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"index"`
	Description string
	Category    string `gorm:"index"`
	Instructor  string
	Duration    string
	CoverURL    string
	PreviewURL  string

	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsPublished bool            `gorm:"default:true;index"`

	// Связь один-ко-многим: У курса много уроков
	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	VideoURL string
	Order    int // Для сортировки (1, 2, 3...)

	CreatedAt time.Time
}
