package repository

import (
	"context"
	"errors"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ManualPaymentRepository struct {
	db *gorm.DB
}

func NewManualPaymentRepository(db *gorm.DB) *ManualPaymentRepository {
	return &ManualPaymentRepository{db: db}
}

func (r *ManualPaymentRepository) Create(ctx context.Context, payment *domain.ManualPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *ManualPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, error) {
	var payment domain.ManualPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrManualPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Ожидающие проверки, с email студента и названием курса для админской таблицы
func (r *ManualPaymentRepository) ListPending(ctx context.Context) ([]domain.ManualPaymentRow, error) {
	var rows []domain.ManualPaymentRow
	err := r.db.WithContext(ctx).Model(&domain.ManualPayment{}).
		Select("manual_payments.*, users.email as user_email, courses.title as course_title").
		Joins("JOIN users ON users.id = manual_payments.user_id").
		Joins("JOIN courses ON courses.id = manual_payments.course_id").
		Where("manual_payments.status = ?", domain.ManualPending).
		Order("manual_payments.created_at asc").
		Scan(&rows).Error
	return rows, err
}

// Approve переводит pending -> approved и одной транзакцией создает
// записи на курс (обе таблицы) и счет. Строка блокируется FOR UPDATE,
// чтобы два админа не одобрили один платеж дважды.
func (r *ManualPaymentRepository) Approve(ctx context.Context, id uuid.UUID, invoice *domain.Invoice) (*domain.ManualPayment, error) {
	var payment domain.ManualPayment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrManualPaymentNotFound
			}
			return err
		}
		if payment.Status != domain.ManualPending {
			return domain.ErrManualPaymentReviewed
		}

		if err := tx.Model(&payment).Update("status", domain.ManualApproved).Error; err != nil {
			return err
		}

		// Повторная запись на курс не должна валить одобрение
		var enrolled int64
		if err := tx.Model(&domain.Enrollment{}).
			Where("student_id = ? AND course_id = ?", payment.UserID, payment.CourseID).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled == 0 {
			if err := createEnrollmentTx(tx, payment.UserID, payment.CourseID, time.Now()); err != nil {
				return err
			}
		}

		invoice.UserID = payment.UserID
		invoice.CourseID = payment.CourseID
		invoice.Amount = payment.Amount
		return tx.Create(invoice).Error
	})
	if err != nil {
		return nil, err
	}

	payment.Status = domain.ManualApproved
	return &payment, nil
}

// Reject меняет только статус
func (r *ManualPaymentRepository) Reject(ctx context.Context, id uuid.UUID) (*domain.ManualPayment, error) {
	var payment domain.ManualPayment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrManualPaymentNotFound
			}
			return err
		}
		if payment.Status != domain.ManualPending {
			return domain.ErrManualPaymentReviewed
		}
		return tx.Model(&payment).Update("status", domain.ManualRejected).Error
	})
	if err != nil {
		return nil, err
	}

	payment.Status = domain.ManualRejected
	return &payment, nil
}
