package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewExists     = errors.New("you have already reviewed this course")
	ErrReviewNotAllowed = errors.New("only enrolled students can leave a review")
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_course"`
	CourseID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_review_user_course"`

	Rating  int `gorm:"not null"` // 1..5
	Comment string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Отзыв с именем автора для публичного списка
type ReviewRow struct {
	Review
	AuthorName string
}
