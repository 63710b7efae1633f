package usecase

import (
	"context"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type AnnouncementRepo interface {
	ListPublished(ctx context.Context) ([]domain.Announcement, error)
	ListAll(ctx context.Context) ([]domain.Announcement, error)
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AnnouncementUseCase struct {
	repo AnnouncementRepo
}

func NewAnnouncementUseCase(repo AnnouncementRepo) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo}
}

func (uc *AnnouncementUseCase) ListPublished(ctx context.Context) ([]domain.Announcement, error) {
	return uc.repo.ListPublished(ctx)
}

func (uc *AnnouncementUseCase) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *AnnouncementUseCase) Create(ctx context.Context, a *domain.Announcement) error {
	return uc.repo.Create(ctx, a)
}

func (uc *AnnouncementUseCase) Update(ctx context.Context, a *domain.Announcement) error {
	return uc.repo.Update(ctx, a)
}

func (uc *AnnouncementUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
