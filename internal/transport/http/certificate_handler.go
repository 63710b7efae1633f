package handlers

import (
	"errors"
	"net/http"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CertificateHandler struct {
	certs *usecase.CertificateUseCase
}

func NewCertificateHandler(certs *usecase.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{certs: certs}
}

// Generate отдает HTML сертификата, фронт рендерит/печатает его сам
func (h *CertificateHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	html, err := h.certs.Generate(c, userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCourseNotCompleted):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCertificateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificate": html})
}

// Публичная проверка сертификата по коду
func (h *CertificateHandler) Verify(c *gin.Context) {
	serial := c.Param("serial")
	if serial == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Serial is required"})
		return
	}

	html, err := h.certs.Verify(c, serial)
	if err != nil {
		if errors.Is(err, domain.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificate": html})
}
