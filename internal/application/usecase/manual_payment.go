package usecase

import (
	"context"
	"log"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ManualPaymentRepo interface {
	Create(ctx context.Context, payment *domain.ManualPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, error)
	ListPending(ctx context.Context) ([]domain.ManualPaymentRow, error)
	Approve(ctx context.Context, id uuid.UUID, invoice *domain.Invoice) (*domain.ManualPayment, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, error)
}

type ManualPaymentUseCase struct {
	payments ManualPaymentRepo
	courses  CourseRepo
	users    UserRepo
	email    EnrollmentEmailSender
	now      func() time.Time
}

func NewManualPaymentUseCase(mr ManualPaymentRepo, cr CourseRepo, ur UserRepo, es EnrollmentEmailSender) *ManualPaymentUseCase {
	return &ManualPaymentUseCase{
		payments: mr,
		courses:  cr,
		users:    ur,
		email:    es,
		now:      time.Now,
	}
}

// Submit: студент заявляет bKash-платеж, заявка уходит в pending
func (uc *ManualPaymentUseCase) Submit(ctx context.Context, userID, courseID uuid.UUID, fullName, bkashNumber, trxID string, amount decimal.Decimal) (*domain.ManualPayment, error) {
	if _, err := uc.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	payment := &domain.ManualPayment{
		UserID:        userID,
		CourseID:      courseID,
		FullName:      fullName,
		BkashNumber:   bkashNumber,
		TransactionID: trxID,
		Amount:        amount,
		Status:        domain.ManualPending,
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (uc *ManualPaymentUseCase) ListPending(ctx context.Context) ([]domain.ManualPaymentRow, error) {
	return uc.payments.ListPending(ctx)
}

// Approve: статус, запись на курс и счет создаются одной транзакцией в репозитории
func (uc *ManualPaymentUseCase) Approve(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, *domain.Invoice, error) {
	pending, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	invoice := &domain.Invoice{
		InvoiceNumber: NewInvoiceNumber(now),
		AccessCode:    NewAccessCode(now, pending.FullName),
		Status:        "paid",
	}

	payment, err := uc.payments.Approve(ctx, id, invoice)
	if err != nil {
		return nil, nil, err
	}

	if uc.email != nil {
		if user, err := uc.users.GetByID(ctx, payment.UserID); err == nil {
			courseTitle := ""
			if course, err := uc.courses.GetByID(ctx, payment.CourseID); err == nil {
				courseTitle = course.Title
			}
			if err := uc.email.SendEnrollmentEmail(user.Email, payment.FullName, courseTitle); err != nil {
				log.Printf("manual payment %s: email: %v", id, err)
			}
		}
	}

	return payment, invoice, nil
}

func (uc *ManualPaymentUseCase) Reject(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, error) {
	return uc.payments.Reject(ctx, id)
}
