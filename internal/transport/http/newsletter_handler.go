package handlers

import (
	"errors"
	"net/http"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletter *usecase.NewsletterUseCase
}

func NewNewsletterHandler(newsletter *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

type subscribeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsletter.Subscribe(c, req.Email); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsletter.Unsubscribe(c, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed"})
}

type sendCampaignReq struct {
	Subject string `json:"subject" binding:"required"`
	HTML    string `json:"html" binding:"required"`
}

// Рассылка по всем активным подписчикам (только супер-админ)
func (h *NewsletterHandler) Send(c *gin.Context) {
	var req sendCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sent, failed, err := h.newsletter.Send(c, req.Subject, req.HTML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Campaign sent",
		"sent":    sent,
		"failed":  failed,
	})
}
