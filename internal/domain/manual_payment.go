package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrManualPaymentNotFound = errors.New("manual payment not found")
	ErrManualPaymentReviewed = errors.New("manual payment already reviewed")
)

const (
	ManualPending  = "pending"
	ManualApproved = "approved"
	ManualRejected = "rejected"
)

// Платеж, заявленный студентом (bKash), ждет ручной проверки админом.
// pending -> approved | rejected, обратного пути нет.
type ManualPayment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	CourseID uuid.UUID `gorm:"type:uuid;index"`

	FullName      string
	BkashNumber   string          `gorm:"size:20"`
	TransactionID string          `gorm:"size:64"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2)"`

	Status string `gorm:"default:'pending';index"` // pending | approved | rejected

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Строка для админской таблицы (join с профилем и курсом)
type ManualPaymentRow struct {
	ManualPayment
	UserEmail   string
	CourseTitle string
}
