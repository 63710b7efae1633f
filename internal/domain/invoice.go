package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null;size:32"` // SB<год>-<6 цифр>
	AccessCode    string    `gorm:"not null;size:64"`

	UserID   uuid.UUID `gorm:"type:uuid;index"`
	CourseID uuid.UUID `gorm:"type:uuid;index"`

	Amount decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status string          `gorm:"default:'paid'"`

	CreatedAt time.Time
}
