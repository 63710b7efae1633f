package repository

import (
	"context"
	"errors"

	"shikkhabazar/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) GetByTranID(ctx context.Context, tranID string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.WithContext(ctx).Where("tran_id = ?", tranID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Статус меняем только из pending: повторный IPN от шлюза не перетирает итог
func (r *PaymentRepository) MarkStatus(ctx context.Context, tranID, status, valID, cardType, bankTranID string) error {
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("tran_id = ? AND status = ?", tranID, domain.PaymentPending).
		Updates(map[string]interface{}{
			"status":       status,
			"val_id":       valID,
			"card_type":    cardType,
			"bank_tran_id": bankTranID,
		}).Error
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error) {
	var payments []domain.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Payment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&payments).Error
	return payments, total, err
}
