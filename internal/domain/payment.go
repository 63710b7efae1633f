package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPaymentNotFound = errors.New("payment not found")

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TranID string    `gorm:"uniqueIndex;not null;size:64"` // Передается шлюзу как tran_id

	UserID   uuid.UUID `gorm:"type:uuid;index"`
	CourseID uuid.UUID `gorm:"type:uuid;index"`

	OriginalAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2)"` // К оплате

	CouponID *uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"default:'pending';index"` // pending | completed | failed

	// Метаданные шлюза
	GatewayName string `gorm:"default:'sslcommerz'"`
	ValID       string
	CardType    string
	BankTranID  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
