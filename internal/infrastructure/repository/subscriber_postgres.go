package repository

import (
	"context"
	"errors"
	"strings"

	"shikkhabazar/internal/domain"

	"gorm.io/gorm"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	err := r.db.WithContext(ctx).Create(sub).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Отписавшийся подписывается заново - реактивируем его строку
		res := r.db.WithContext(ctx).Model(&domain.Subscriber{}).
			Where("email = ? AND is_active = ?", sub.Email, false).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadySubscribed
		}
		return nil
	}
	return err
}

// Отписка мягкая: строку не удаляем, чтобы повторная подписка не плодила дубли
func (r *SubscriberRepository) Deactivate(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&domain.Subscriber{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Update("is_active", false).Error
}

func (r *SubscriberRepository) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&subs).Error
	return subs, err
}
