package repository

import (
	"context"
	"errors"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrReviewExists
	}
	return err
}

func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.ReviewRow, error) {
	var rows []domain.ReviewRow
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("reviews.*, users.full_name as author_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.course_id = ?", courseID).
		Order("reviews.created_at desc").
		Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
