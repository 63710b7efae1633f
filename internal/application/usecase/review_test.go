package usecase

import (
	"context"
	"testing"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) error {
	for _, r := range f.reviews {
		if r.UserID == review.UserID && r.CourseID == review.CourseID {
			return domain.ErrReviewExists
		}
	}
	review.ID = uuid.New()
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByCourse(_ context.Context, courseID uuid.UUID) ([]domain.ReviewRow, error) {
	var out []domain.ReviewRow
	for _, r := range f.reviews {
		if r.CourseID == courseID {
			out = append(out, domain.ReviewRow{Review: *r})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestReviewCreateRequiresEnrollment(t *testing.T) {
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	repo := &fakeReviewRepo{}
	enrolls := newFakeEnrollmentRepo()
	uc := NewReviewUseCase(repo, enrolls)

	_, err := uc.Create(ctx, userID, courseID, 5, "отличный курс")
	assert.ErrorIs(t, err, domain.ErrReviewNotAllowed)
	assert.Empty(t, repo.reviews)

	require.NoError(t, enrolls.Create(ctx, userID, courseID))

	review, err := uc.Create(ctx, userID, courseID, 5, "отличный курс")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	// Второй отзыв на тот же курс не проходит
	_, err = uc.Create(ctx, userID, courseID, 1, "передумал")
	assert.ErrorIs(t, err, domain.ErrReviewExists)

	rows, err := uc.ListByCourse(ctx, courseID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestEnrollmentUpdateProgress(t *testing.T) {
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	enrolls := newFakeEnrollmentRepo()
	uc := NewEnrollmentUseCase(enrolls)

	// Без записи на курс прогресс не обновить
	err := uc.UpdateProgress(ctx, userID, courseID, 50)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)

	require.NoError(t, enrolls.Create(ctx, userID, courseID))

	require.NoError(t, uc.UpdateProgress(ctx, userID, courseID, 150))
	e, err := enrolls.Get(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, int32(100), e.ProgressPercent)
	assert.Equal(t, "completed", e.Status)

	require.NoError(t, uc.UpdateProgress(ctx, userID, courseID, -5))
	e, err = enrolls.Get(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), e.ProgressPercent)
}
