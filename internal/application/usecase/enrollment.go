package usecase

import (
	"context"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type EnrollmentRepo interface {
	Create(ctx context.Context, studentID, courseID uuid.UUID) error
	Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
	Get(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Enrollment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, studentID, courseID uuid.UUID, percent int32) error
}

type EnrollmentUseCase struct {
	repo EnrollmentRepo
}

func NewEnrollmentUseCase(repo EnrollmentRepo) *EnrollmentUseCase {
	return &EnrollmentUseCase{repo: repo}
}

func (uc *EnrollmentUseCase) MyCourses(ctx context.Context, studentID uuid.UUID) ([]domain.EnrolledCourse, error) {
	return uc.repo.ListByStudent(ctx, studentID)
}

func (uc *EnrollmentUseCase) UpdateProgress(ctx context.Context, studentID, courseID uuid.UUID, percent int32) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	exists, err := uc.repo.Exists(ctx, studentID, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCourseNotFound
	}
	return uc.repo.UpdateProgress(ctx, studentID, courseID, percent)
}
