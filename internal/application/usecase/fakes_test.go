package usecase

import (
	"context"
	"time"

	"shikkhabazar/internal/domain"
	"shikkhabazar/internal/infrastructure/gateway"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Фейки репозиториев для тестов use case-ов

type fakeCouponRepo struct {
	coupons map[string]*domain.Coupon // по коду
	usages  map[string]bool           // coupon|user|course
	redeems []*domain.CouponUsage
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{
		coupons: make(map[string]*domain.Coupon),
		usages:  make(map[string]bool),
	}
}

func usageKey(couponID, userID, courseID uuid.UUID) string {
	return couponID.String() + "|" + userID.String() + "|" + courseID.String()
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, domain.ErrCouponNotFound
	}
	return c, nil
}

func (f *fakeCouponRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCouponNotFound
}

func (f *fakeCouponRepo) HasUsage(_ context.Context, couponID, userID, courseID uuid.UUID) (bool, error) {
	return f.usages[usageKey(couponID, userID, courseID)], nil
}

func (f *fakeCouponRepo) Redeem(_ context.Context, usage *domain.CouponUsage) error {
	key := usageKey(usage.CouponID, usage.UserID, usage.CourseID)
	if f.usages[key] {
		return domain.ErrCouponAlreadyUsed
	}
	var coupon *domain.Coupon
	for _, c := range f.coupons {
		if c.ID == usage.CouponID {
			coupon = c
		}
	}
	if coupon == nil {
		return domain.ErrCouponNotFound
	}
	if coupon.UsageLimit > 0 && coupon.UsageCount >= coupon.UsageLimit {
		return domain.ErrCouponLimitExceeded
	}
	coupon.UsageCount++
	f.usages[key] = true
	f.redeems = append(f.redeems, usage)
	return nil
}

func (f *fakeCouponRepo) List(_ context.Context) ([]domain.Coupon, error) {
	var out []domain.Coupon
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *domain.Coupon) error {
	f.coupons[coupon.Code] = coupon
	return nil
}

func (f *fakeCouponRepo) Update(_ context.Context, coupon *domain.Coupon) error {
	f.coupons[coupon.Code] = coupon
	return nil
}

func (f *fakeCouponRepo) Delete(_ context.Context, id uuid.UUID) error {
	for code, c := range f.coupons {
		if c.ID == id {
			delete(f.coupons, code)
		}
	}
	return nil
}

type fakeCourseRepo struct {
	courses map[uuid.UUID]*domain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uuid.UUID]*domain.Course)}
}

func (f *fakeCourseRepo) List(_ context.Context, _, _ string, _, _ int) ([]domain.Course, int64, error) {
	var out []domain.Course
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *domain.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.courses, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, fullName, phone, avatarURL string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FullName, u.Phone, u.AvatarURL = fullName, phone, avatarURL
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]*domain.Enrollment
	legacyCount int
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[string]*domain.Enrollment)}
}

func enrollKey(studentID, courseID uuid.UUID) string {
	return studentID.String() + "|" + courseID.String()
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, studentID, courseID uuid.UUID) error {
	key := enrollKey(studentID, courseID)
	if _, ok := f.enrollments[key]; ok {
		return domain.ErrAlreadyEnrolled
	}
	now := time.Now()
	f.enrollments[key] = &domain.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: now,
		Status:     "active",
	}
	f.legacyCount++
	return nil
}

func (f *fakeEnrollmentRepo) Exists(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	_, ok := f.enrollments[enrollKey(studentID, courseID)]
	return ok, nil
}

func (f *fakeEnrollmentRepo) Get(_ context.Context, studentID, courseID uuid.UUID) (*domain.Enrollment, error) {
	e, ok := f.enrollments[enrollKey(studentID, courseID)]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return e, nil
}

func (f *fakeEnrollmentRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]domain.EnrolledCourse, error) {
	var out []domain.EnrolledCourse
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			out = append(out, domain.EnrolledCourse{Enrollment: *e})
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) UpdateProgress(_ context.Context, studentID, courseID uuid.UUID, percent int32) error {
	e, ok := f.enrollments[enrollKey(studentID, courseID)]
	if !ok {
		return domain.ErrCourseNotFound
	}
	e.ProgressPercent = percent
	if percent >= 100 {
		e.Status = "completed"
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	f.payments[payment.TranID] = payment
	return nil
}

func (f *fakePaymentRepo) GetByTranID(_ context.Context, tranID string) (*domain.Payment, error) {
	p, ok := f.payments[tranID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) MarkStatus(_ context.Context, tranID, status, valID, cardType, bankTranID string) error {
	p, ok := f.payments[tranID]
	if !ok || p.Status != domain.PaymentPending {
		return nil
	}
	p.Status = status
	p.ValID = valID
	p.CardType = cardType
	p.BankTranID = bankTranID
	return nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.UserID.String() == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListAll(_ context.Context, _, _ int) ([]domain.Payment, int64, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeManualRepo struct {
	payments map[uuid.UUID]*domain.ManualPayment
	invoices []*domain.Invoice
}

func newFakeManualRepo() *fakeManualRepo {
	return &fakeManualRepo{payments: make(map[uuid.UUID]*domain.ManualPayment)}
}

func (f *fakeManualRepo) Create(_ context.Context, payment *domain.ManualPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeManualRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ManualPayment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrManualPaymentNotFound
	}
	return p, nil
}

func (f *fakeManualRepo) ListPending(_ context.Context) ([]domain.ManualPaymentRow, error) {
	var out []domain.ManualPaymentRow
	for _, p := range f.payments {
		if p.Status == domain.ManualPending {
			out = append(out, domain.ManualPaymentRow{ManualPayment: *p})
		}
	}
	return out, nil
}

func (f *fakeManualRepo) Approve(_ context.Context, id uuid.UUID, invoice *domain.Invoice) (*domain.ManualPayment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrManualPaymentNotFound
	}
	if p.Status != domain.ManualPending {
		return nil, domain.ErrManualPaymentReviewed
	}
	p.Status = domain.ManualApproved
	invoice.UserID = p.UserID
	invoice.CourseID = p.CourseID
	invoice.Amount = p.Amount
	f.invoices = append(f.invoices, invoice)
	return p, nil
}

func (f *fakeManualRepo) Reject(_ context.Context, id uuid.UUID) (*domain.ManualPayment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrManualPaymentNotFound
	}
	if p.Status != domain.ManualPending {
		return nil, domain.ErrManualPaymentReviewed
	}
	p.Status = domain.ManualRejected
	return p, nil
}

type fakeGateway struct {
	enabled bool
	url     string
	last    gateway.SessionRequest
}

func (f *fakeGateway) Enabled() bool { return f.enabled }

func (f *fakeGateway) CreateSession(_ context.Context, req gateway.SessionRequest) (string, error) {
	f.last = req
	return f.url, nil
}

func newCoupon(code string, mod func(*domain.Coupon)) *domain.Coupon {
	c := &domain.Coupon{
		ID:                 uuid.New(),
		Code:               code,
		DiscountType:       domain.DiscountPercentage,
		DiscountPercentage: 10,
		ValidFrom:          time.Now().Add(-time.Hour),
		ValidUntil:         time.Now().Add(time.Hour),
		UsageLimit:         100,
		IsActive:           true,
		MinimumAmount:      decimal.Zero,
	}
	if mod != nil {
		mod(c)
	}
	return c
}
