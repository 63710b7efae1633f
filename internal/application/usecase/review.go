package usecase

import (
	"context"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.ReviewRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewUseCase struct {
	reviews     ReviewRepo
	enrollments EnrollmentRepo
}

func NewReviewUseCase(rr ReviewRepo, er EnrollmentRepo) *ReviewUseCase {
	return &ReviewUseCase{reviews: rr, enrollments: er}
}

// Отзыв может оставить только записанный на курс студент, один раз
func (uc *ReviewUseCase) Create(ctx context.Context, userID, courseID uuid.UUID, rating int, comment string) (*domain.Review, error) {
	enrolled, err := uc.enrollments.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, domain.ErrReviewNotAllowed
	}

	review := &domain.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := uc.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.ReviewRow, error) {
	return uc.reviews.ListByCourse(ctx, courseID)
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.reviews.Delete(ctx, id)
}
