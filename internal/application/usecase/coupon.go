package usecase

import (
	"context"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Репозитории за интерфейсами, чтобы в тестах подставлять фейки
type CouponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coupon, error)
	HasUsage(ctx context.Context, couponID, userID, courseID uuid.UUID) (bool, error)
	Redeem(ctx context.Context, usage *domain.CouponUsage) error
	List(ctx context.Context) ([]domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) error
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponUseCase struct {
	repo CouponRepo
	now  func() time.Time
}

func NewCouponUseCase(repo CouponRepo) *CouponUseCase {
	return &CouponUseCase{repo: repo, now: time.Now}
}

// Validate проверяет купон для покупки конкретного курса. Только чтение.
func (uc *CouponUseCase) Validate(ctx context.Context, code string, userID, courseID uuid.UUID, price decimal.Decimal) (*domain.Coupon, error) {
	coupon, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if !coupon.IsActive || now.Before(coupon.ValidFrom) || now.After(coupon.ValidUntil) {
		return nil, domain.ErrCouponNotFound
	}

	if coupon.UsageLimit > 0 && coupon.UsageCount >= coupon.UsageLimit {
		return nil, domain.ErrCouponLimitExceeded
	}

	if !coupon.AppliesTo(courseID) {
		return nil, domain.ErrCouponNotApplicable
	}

	if coupon.MinimumAmount.IsPositive() && price.LessThan(coupon.MinimumAmount) {
		return nil, domain.ErrCouponMinimumAmount
	}

	used, err := uc.repo.HasUsage(ctx, coupon.ID, userID, courseID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrCouponAlreadyUsed
	}

	return coupon, nil
}

// Redeem фиксирует использование купона (запись + инкремент счетчика в одной транзакции)
func (uc *CouponUseCase) Redeem(ctx context.Context, couponID, userID, courseID uuid.UUID, discount decimal.Decimal) error {
	return uc.repo.Redeem(ctx, &domain.CouponUsage{
		CouponID:        couponID,
		UserID:          userID,
		CourseID:        courseID,
		DiscountApplied: discount,
		UsedAt:          uc.now(),
	})
}

// CalculateDiscount: percentage - округляем до целого,
// fixed - не больше самой цены
func CalculateDiscount(coupon *domain.Coupon, price decimal.Decimal) decimal.Decimal {
	switch coupon.DiscountType {
	case domain.DiscountPercentage:
		return price.Mul(decimal.NewFromInt(int64(coupon.DiscountPercentage))).
			Div(decimal.NewFromInt(100)).
			Round(0)
	case domain.DiscountFixed:
		if coupon.DiscountAmount.GreaterThan(price) {
			return price
		}
		return coupon.DiscountAmount
	}
	return decimal.Zero
}

// === Админка ===

func (uc *CouponUseCase) ListAll(ctx context.Context) ([]domain.Coupon, error) {
	return uc.repo.List(ctx)
}

func (uc *CouponUseCase) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	return uc.repo.Create(ctx, coupon)
}

func (uc *CouponUseCase) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	return uc.repo.Update(ctx, coupon)
}

func (uc *CouponUseCase) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
