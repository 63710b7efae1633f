package repository

import (
	"context"
	"errors"
	"strings"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).
		Preload("ApplicableCourses").
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).Preload("ApplicableCourses").First(&coupon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) HasUsage(ctx context.Context, couponID, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ? AND course_id = ?", couponID, userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// Redeem пишет запись об использовании и инкрементит счетчик одной транзакцией.
// Инкремент условный: usage_count < usage_limit проверяется самим UPDATE,
// поэтому два одновременных погашения не пробьют лимит.
func (r *CouponRepository) Redeem(ctx context.Context, usage *domain.CouponUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usage).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrCouponAlreadyUsed
			}
			return err
		}

		res := tx.Model(&domain.Coupon{}).
			Where("id = ? AND (usage_limit = 0 OR usage_count < usage_limit)", usage.CouponID).
			Update("usage_count", gorm.Expr("usage_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCouponLimitExceeded
		}
		return nil
	})
}

// === Админка ===

func (r *CouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	var coupons []domain.Coupon
	err := r.db.WithContext(ctx).
		Preload("ApplicableCourses").
		Order("created_at desc").
		Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *CouponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(coupon).Error
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Coupon{}, "id = ?", id).Error
}
