package handlers

import (
	"errors"
	"net/http"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnnouncementHandler struct {
	announcements *usecase.AnnouncementUseCase
}

func NewAnnouncementHandler(announcements *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

func (h *AnnouncementHandler) ListPublished(c *gin.Context) {
	items, err := h.announcements.ListPublished(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

// === Админка ===

func (h *AnnouncementHandler) ListAll(c *gin.Context) {
	items, err := h.announcements.ListAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

type announcementReq struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
	IsPublished *bool  `json:"is_published"`
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req announcementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Announcement{Title: req.Title, Body: req.Body, IsPublished: true}
	if req.IsPublished != nil {
		a.IsPublished = *req.IsPublished
	}

	if err := h.announcements.Create(c, a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement id"})
		return
	}

	var req announcementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Announcement{ID: id, Title: req.Title, Body: req.Body, IsPublished: true}
	if req.IsPublished != nil {
		a.IsPublished = *req.IsPublished
	}

	if err := h.announcements.Update(c, a); err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement id"})
		return
	}

	if err := h.announcements.Delete(c, id); err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
