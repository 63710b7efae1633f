package handlers

import (
	"errors"
	"net/http"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ManualPaymentHandler struct {
	manual *usecase.ManualPaymentUseCase
}

func NewManualPaymentHandler(manual *usecase.ManualPaymentUseCase) *ManualPaymentHandler {
	return &ManualPaymentHandler{manual: manual}
}

type submitManualReq struct {
	CourseID      string          `json:"course_id" binding:"required"`
	FullName      string          `json:"full_name" binding:"required"`
	BkashNumber   string          `json:"bkash_number" binding:"required"`
	TransactionID string          `json:"transaction_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// Submit: студент оплатил через bKash и прислал номер транзакции
func (h *ManualPaymentHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req submitManualReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	payment, err := h.manual.Submit(c, userID, courseID, req.FullName, req.BkashNumber, req.TransactionID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment submitted for review",
		"payment": payment,
	})
}

// === Админка ===

func (h *ManualPaymentHandler) ListPending(c *gin.Context) {
	rows, err := h.manual.ListPending(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": rows})
}

type reviewManualReq struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

func (h *ManualPaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	var req reviewManualReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == domain.ManualApproved {
		payment, invoice, err := h.manual.Approve(c, id)
		if err != nil {
			h.reviewError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Payment approved",
			"payment": payment,
			"invoice": invoice,
		})
		return
	}

	payment, err := h.manual.Reject(c, id)
	if err != nil {
		h.reviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment rejected",
		"payment": payment,
	})
}

func (h *ManualPaymentHandler) reviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrManualPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case errors.Is(err, domain.ErrManualPaymentReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": "Payment already reviewed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
