package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Сообщения отдаются фронту как есть, поэтому текст фиксированный
var (
	ErrCouponNotFound      = errors.New("Invalid or expired coupon code")
	ErrCouponLimitExceeded = errors.New("Coupon usage limit exceeded")
	ErrCouponNotApplicable = errors.New("Coupon not applicable to this course")
	ErrCouponAlreadyUsed   = errors.New("You have already used this coupon for this course")
	ErrCouponMinimumAmount = errors.New("Order amount is below the coupon minimum")
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code string    `gorm:"uniqueIndex;not null;size:50"` // Хранится в верхнем регистре

	DiscountType       string          `gorm:"not null"` // "percentage" | "fixed"
	DiscountPercentage int
	DiscountAmount     decimal.Decimal `gorm:"type:numeric(10,2)"`

	ValidFrom  time.Time
	ValidUntil time.Time

	UsageLimit int  `gorm:"default:0"` // 0 = без лимита
	UsageCount int  `gorm:"default:0"`
	IsActive   bool `gorm:"default:true"`

	// Пустой список = купон действует на все курсы
	ApplicableCourses []CouponCourse  `gorm:"foreignKey:CouponID;constraint:OnDelete:CASCADE;"`
	MinimumAmount     decimal.Decimal `gorm:"type:numeric(10,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CouponCourse struct {
	CouponID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// Одна запись на (купон, пользователь, курс)
type CouponUsage struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CouponID        uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_coupon_user_course"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_coupon_user_course"`
	CourseID        uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_coupon_user_course"`
	DiscountApplied decimal.Decimal `gorm:"type:numeric(10,2)"`
	UsedAt          time.Time
}

// AppliesTo: пустой список applicable_courses означает "все курсы"
func (c *Coupon) AppliesTo(courseID uuid.UUID) bool {
	if len(c.ApplicableCourses) == 0 {
		return true
	}
	for _, cc := range c.ApplicableCourses {
		if cc.CourseID == courseID {
			return true
		}
	}
	return false
}
