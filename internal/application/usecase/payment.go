package usecase

import (
	"context"
	"log"
	"net/url"
	"time"

	"shikkhabazar/internal/domain"
	"shikkhabazar/internal/infrastructure/gateway"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByTranID(ctx context.Context, tranID string) (*domain.Payment, error)
	MarkStatus(ctx context.Context, tranID, status, valID, cardType, bankTranID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error)
}

type GatewayClient interface {
	Enabled() bool
	CreateSession(ctx context.Context, req gateway.SessionRequest) (string, error)
}

type EnrollmentEmailSender interface {
	SendEnrollmentEmail(toEmail, fullName, courseTitle string) error
}

type PaymentUseCase struct {
	payments    PaymentRepo
	courses     CourseRepo
	users       UserRepo
	enrollments EnrollmentRepo
	coupons     *CouponUseCase
	gateway     GatewayClient
	email       EnrollmentEmailSender
}

func NewPaymentUseCase(
	pr PaymentRepo,
	cr CourseRepo,
	ur UserRepo,
	er EnrollmentRepo,
	cu *CouponUseCase,
	gw GatewayClient,
	es EnrollmentEmailSender,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:    pr,
		courses:     cr,
		users:       ur,
		enrollments: er,
		coupons:     cu,
		gateway:     gw,
		email:       es,
	}
}

type InitiateResult struct {
	TranID     string
	Amount     decimal.Decimal
	Discount   decimal.Decimal
	GatewayURL string
	Demo       bool
}

// Initiate создает pending-платеж и сессию в шлюзе.
// Без настроенного шлюза (демо) платеж "проходит" сам через пару секунд.
func (uc *PaymentUseCase) Initiate(ctx context.Context, userID, courseID uuid.UUID, couponCode string) (*InitiateResult, error) {
	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if enrolled, err := uc.enrollments.Exists(ctx, userID, courseID); err != nil {
		return nil, err
	} else if enrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	discount := decimal.Zero
	var couponID *uuid.UUID
	couponIDStr := ""
	if couponCode != "" {
		coupon, err := uc.coupons.Validate(ctx, couponCode, userID, courseID, course.Price)
		if err != nil {
			return nil, err
		}
		discount = CalculateDiscount(coupon, course.Price)
		couponID = &coupon.ID
		couponIDStr = coupon.ID.String()
	}

	amount := course.Price.Sub(discount)
	tranID := "SB-" + uuid.New().String()

	payment := &domain.Payment{
		TranID:         tranID,
		UserID:         userID,
		CourseID:       courseID,
		OriginalAmount: course.Price,
		DiscountAmount: discount,
		Amount:         amount,
		CouponID:       couponID,
		Status:         domain.PaymentPending,
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	res := &InitiateResult{TranID: tranID, Amount: amount, Discount: discount}

	if !uc.gateway.Enabled() {
		// Демо-режим: завершаем платеж в фоне, после ответа клиенту
		res.Demo = true
		go func() {
			time.Sleep(2 * time.Second)
			form := url.Values{}
			form.Set("tran_id", tranID)
			form.Set("status", "VALID")
			form.Set("val_id", "DEMO-"+tranID)
			if err := uc.HandleIPN(context.Background(), form); err != nil {
				log.Printf("demo payment %s: %v", tranID, err)
			}
		}()
		return res, nil
	}

	gwURL, err := uc.gateway.CreateSession(ctx, gateway.SessionRequest{
		TranID:        tranID,
		Amount:        amount,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		CustomerPhone: user.Phone,
		ProductName:   course.Title,
		UserID:        userID.String(),
		CourseID:      courseID.String(),
		CouponID:      couponIDStr,
	})
	if err != nil {
		_ = uc.payments.MarkStatus(ctx, tranID, domain.PaymentFailed, "", "", "")
		return nil, err
	}

	res.GatewayURL = gwURL
	return res, nil
}

// HandleIPN обрабатывает коллбек шлюза. Ошибка отсюда логируется,
// но хендлер все равно отвечает шлюзу 200 "OK" - таков его retry-контракт.
func (uc *PaymentUseCase) HandleIPN(ctx context.Context, form url.Values) error {
	tranID := form.Get("tran_id")
	if tranID == "" {
		return domain.ErrPaymentNotFound
	}

	switch form.Get("status") {
	case "VALID":
		return uc.complete(ctx, tranID, form)
	case "FAILED", "CANCELLED":
		return uc.payments.MarkStatus(ctx, tranID, domain.PaymentFailed,
			form.Get("val_id"), form.Get("card_type"), form.Get("bank_tran_id"))
	default:
		// Неизвестный статус: ничего не делаем
		return nil
	}
}

func (uc *PaymentUseCase) complete(ctx context.Context, tranID string, form url.Values) error {
	payment, err := uc.payments.GetByTranID(ctx, tranID)
	if err != nil {
		return err
	}
	if payment.Status != domain.PaymentPending {
		// Шлюз повторяет IPN, завершенный платеж не трогаем
		return nil
	}

	if err := uc.payments.MarkStatus(ctx, tranID, domain.PaymentCompleted,
		form.Get("val_id"), form.Get("card_type"), form.Get("bank_tran_id")); err != nil {
		return err
	}

	if payment.CouponID != nil {
		err := uc.coupons.Redeem(ctx, *payment.CouponID, payment.UserID, payment.CourseID, payment.DiscountAmount)
		if err != nil {
			log.Printf("payment %s: coupon redeem: %v", tranID, err)
		}
	}

	if err := uc.enrollments.Create(ctx, payment.UserID, payment.CourseID); err != nil {
		log.Printf("payment %s: enrollment: %v", tranID, err)
	}

	if uc.email != nil {
		if user, err := uc.users.GetByID(ctx, payment.UserID); err == nil {
			courseTitle := ""
			if course, err := uc.courses.GetByID(ctx, payment.CourseID); err == nil {
				courseTitle = course.Title
			}
			if err := uc.email.SendEnrollmentEmail(user.Email, user.FullName, courseTitle); err != nil {
				log.Printf("payment %s: email: %v", tranID, err)
			}
		}
	}

	return nil
}

func (uc *PaymentUseCase) MyPayments(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	return uc.payments.ListByUser(ctx, userID.String())
}

func (uc *PaymentUseCase) ListAll(ctx context.Context, page, pageSize int) ([]domain.Payment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.payments.ListAll(ctx, pageSize, (page-1)*pageSize)
}
