package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
)

type InvoiceRepo interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
}

type InvoiceUseCase struct {
	repo InvoiceRepo
}

func NewInvoiceUseCase(repo InvoiceRepo) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (uc *InvoiceUseCase) MyInvoices(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	return uc.repo.ListByUser(ctx, userID)
}

func (uc *InvoiceUseCase) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	return uc.repo.GetByNumber(ctx, number)
}

// NewInvoiceNumber: SB<год>-<последние 6 цифр epoch millis>
func NewInvoiceNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("SB%d-%s", now.Year(), millis[len(millis)-6:])
}

// NewAccessCode: SB<год><имя в верхнем регистре><последние 4 цифры epoch millis>
func NewAccessCode(now time.Time, fullName string) string {
	first := strings.Fields(strings.TrimSpace(fullName))
	firstName := "STUDENT"
	if len(first) > 0 {
		firstName = strings.ToUpper(first[0])
	}
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("SB%d%s%s", now.Year(), firstName, millis[len(millis)-4:])
}
