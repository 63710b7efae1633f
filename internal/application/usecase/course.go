package usecase

import (
	"context"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type CourseRepo interface {
	List(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseUseCase struct {
	repo CourseRepo
}

func NewCourseUseCase(repo CourseRepo) *CourseUseCase {
	return &CourseUseCase{repo: repo}
}

func (uc *CourseUseCase) List(ctx context.Context, search, category string, page, pageSize int) ([]domain.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 12
	}
	return uc.repo.List(ctx, search, category, pageSize, (page-1)*pageSize)
}

func (uc *CourseUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *CourseUseCase) Create(ctx context.Context, course *domain.Course) error {
	return uc.repo.Create(ctx, course)
}

func (uc *CourseUseCase) Update(ctx context.Context, course *domain.Course) error {
	return uc.repo.Update(ctx, course)
}

func (uc *CourseUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
