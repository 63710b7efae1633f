package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCouponRepo struct {
	coupon *domain.Coupon
	used   bool
}

func (s *stubCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	if s.coupon == nil || s.coupon.Code != code {
		return nil, domain.ErrCouponNotFound
	}
	return s.coupon, nil
}

func (s *stubCouponRepo) GetByID(context.Context, uuid.UUID) (*domain.Coupon, error) {
	return s.coupon, nil
}

func (s *stubCouponRepo) HasUsage(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (bool, error) {
	return s.used, nil
}

func (s *stubCouponRepo) Redeem(context.Context, *domain.CouponUsage) error { return nil }
func (s *stubCouponRepo) List(context.Context) ([]domain.Coupon, error)     { return nil, nil }
func (s *stubCouponRepo) Create(context.Context, *domain.Coupon) error      { return nil }
func (s *stubCouponRepo) Update(context.Context, *domain.Coupon) error      { return nil }
func (s *stubCouponRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type stubCourseRepo struct {
	course *domain.Course
}

func (s *stubCourseRepo) List(context.Context, string, string, int, int) ([]domain.Course, int64, error) {
	return nil, 0, nil
}

func (s *stubCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, domain.ErrCourseNotFound
	}
	return s.course, nil
}

func (s *stubCourseRepo) Create(context.Context, *domain.Course) error { return nil }
func (s *stubCourseRepo) Update(context.Context, *domain.Course) error { return nil }
func (s *stubCourseRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func validateCouponRouter(t *testing.T, coupons *stubCouponRepo, courses *stubCourseRepo, userID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewCouponHandler(usecase.NewCouponUseCase(coupons), usecase.NewCourseUseCase(courses))

	r := gin.New()
	r.POST("/api/v1/payments/coupons/validate", func(c *gin.Context) {
		c.Set("userId", userID.String())
	}, h.Validate)
	return r
}

func postValidate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/coupons/validate",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCouponValidateEndpoint(t *testing.T) {
	userID := uuid.New()
	course := &domain.Course{ID: uuid.New(), Title: "Go с нуля", Price: decimal.NewFromInt(1000)}
	coupon := &domain.Coupon{
		ID:                 uuid.New(),
		Code:               "SAVE15",
		DiscountType:       domain.DiscountPercentage,
		DiscountPercentage: 15,
		ValidFrom:          time.Now().Add(-time.Hour),
		ValidUntil:         time.Now().Add(time.Hour),
		IsActive:           true,
	}

	t.Run("ok", func(t *testing.T) {
		r := validateCouponRouter(t, &stubCouponRepo{coupon: coupon}, &stubCourseRepo{course: course}, userID)

		w := postValidate(r, `{"code":"SAVE15","course_id":"`+course.ID.String()+`"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Code          string          `json:"code"`
			Discount      decimal.Decimal `json:"discount"`
			OriginalPrice decimal.Decimal `json:"original_price"`
			Payable       decimal.Decimal `json:"payable_amount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "SAVE15", resp.Code)
		assert.True(t, resp.Discount.Equal(decimal.NewFromInt(150)), "got %s", resp.Discount)
		assert.True(t, resp.Payable.Equal(decimal.NewFromInt(850)), "got %s", resp.Payable)
	})

	t.Run("unknown code message", func(t *testing.T) {
		r := validateCouponRouter(t, &stubCouponRepo{coupon: coupon}, &stubCourseRepo{course: course}, userID)

		w := postValidate(r, `{"code":"NOPE","course_id":"`+course.ID.String()+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired coupon code")
	})

	t.Run("already used message", func(t *testing.T) {
		r := validateCouponRouter(t, &stubCouponRepo{coupon: coupon, used: true}, &stubCourseRepo{course: course}, userID)

		w := postValidate(r, `{"code":"SAVE15","course_id":"`+course.ID.String()+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You have already used this coupon for this course")
	})

	t.Run("unknown course", func(t *testing.T) {
		r := validateCouponRouter(t, &stubCouponRepo{coupon: coupon}, &stubCourseRepo{course: course}, userID)

		w := postValidate(r, `{"code":"SAVE15","course_id":"`+uuid.NewString()+`"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		r := validateCouponRouter(t, &stubCouponRepo{coupon: coupon}, &stubCourseRepo{course: course}, userID)

		w := postValidate(r, `{"code":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
