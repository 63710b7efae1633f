package repository

import (
	"context"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) ListPublished(ctx context.Context) ([]domain.Announcement, error) {
	var items []domain.Announcement
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	var items []domain.Announcement
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	res := r.db.WithContext(ctx).Model(&domain.Announcement{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"title":        a.Title,
			"body":         a.Body,
			"is_published": a.IsPublished,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}
