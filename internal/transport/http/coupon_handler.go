package handlers

import (
	"errors"
	"net/http"
	"time"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponHandler struct {
	coupons *usecase.CouponUseCase
	courses *usecase.CourseUseCase
}

func NewCouponHandler(coupons *usecase.CouponUseCase, courses *usecase.CourseUseCase) *CouponHandler {
	return &CouponHandler{coupons: coupons, courses: courses}
}

type validateCouponReq struct {
	Code     string `json:"code" binding:"required"`
	CourseID string `json:"course_id" binding:"required"`
}

// Validate проверяет купон и возвращает размер скидки, ничего не меняя
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validateCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	course, err := h.courses.Get(c, courseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	coupon, err := h.coupons.Validate(c, req.Code, userID, courseID, course.Price)
	if err != nil {
		if isCouponError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	discount := usecase.CalculateDiscount(coupon, course.Price)

	c.JSON(http.StatusOK, gin.H{
		"coupon_id":       coupon.ID,
		"code":            coupon.Code,
		"discount":        discount,
		"original_price":  course.Price,
		"payable_amount":  course.Price.Sub(discount),
	})
}

func isCouponError(err error) bool {
	return errors.Is(err, domain.ErrCouponNotFound) ||
		errors.Is(err, domain.ErrCouponLimitExceeded) ||
		errors.Is(err, domain.ErrCouponNotApplicable) ||
		errors.Is(err, domain.ErrCouponAlreadyUsed) ||
		errors.Is(err, domain.ErrCouponMinimumAmount)
}

// === Админка ===

type couponReq struct {
	Code               string          `json:"code" binding:"required"`
	DiscountType       string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountPercentage int             `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	ValidFrom          time.Time       `json:"valid_from" binding:"required"`
	ValidUntil         time.Time       `json:"valid_until" binding:"required"`
	UsageLimit         int             `json:"usage_limit"`
	IsActive           *bool           `json:"is_active"`
	ApplicableCourses  []string        `json:"applicable_courses"`
	MinimumAmount      decimal.Decimal `json:"minimum_amount"`
}

func (h *CouponHandler) ListAll(c *gin.Context) {
	coupons, err := h.coupons.ListAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := couponFromReq(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.coupons.CreateCoupon(c, coupon); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon id"})
		return
	}

	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := couponFromReq(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon.ID = id

	if err := h.coupons.UpdateCoupon(c, coupon); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon id"})
		return
	}

	if err := h.coupons.DeleteCoupon(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}

func couponFromReq(req couponReq) (*domain.Coupon, error) {
	coupon := &domain.Coupon{
		Code:               req.Code,
		DiscountType:       req.DiscountType,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		UsageLimit:         req.UsageLimit,
		IsActive:           true,
		MinimumAmount:      req.MinimumAmount,
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	for _, raw := range req.ApplicableCourses {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid course id in applicable_courses")
		}
		coupon.ApplicableCourses = append(coupon.ApplicableCourses, domain.CouponCourse{CourseID: courseID})
	}
	return coupon, nil
}
