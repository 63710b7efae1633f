package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseHandler struct {
	courses *usecase.CourseUseCase
	reviews *usecase.ReviewUseCase
}

func NewCourseHandler(courses *usecase.CourseUseCase, reviews *usecase.ReviewUseCase) *CourseHandler {
	return &CourseHandler{courses: courses, reviews: reviews}
}

func (h *CourseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))

	courses, total, err := h.courses.List(c, c.Query("search"), c.Query("category"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   total,
	})
}

func (h *CourseHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	course, err := h.courses.Get(c, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	reviews, err := h.reviews.ListByCourse(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type courseReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Instructor  string          `json:"instructor"`
	Duration    string          `json:"duration"`
	CoverURL    string          `json:"cover_url"`
	PreviewURL  string          `json:"preview_url"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	IsPublished *bool           `json:"is_published"`
	Lessons     []lessonReq     `json:"lessons"`
}

type lessonReq struct {
	Title    string `json:"title" binding:"required"`
	VideoURL string `json:"video_url"`
	Order    int    `json:"order"`
}

// === Админка ===

func (h *CourseHandler) Create(c *gin.Context) {
	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := courseFromReq(req)
	if err := h.courses.Create(c, course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := courseFromReq(req)
	course.ID = id
	if err := h.courses.Update(c, course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	if err := h.courses.Delete(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

func (h *CourseHandler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	if err := h.reviews.Delete(c, id); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func courseFromReq(req courseReq) *domain.Course {
	course := &domain.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		CoverURL:    req.CoverURL,
		PreviewURL:  req.PreviewURL,
		Price:       req.Price,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	for _, l := range req.Lessons {
		course.Lessons = append(course.Lessons, domain.Lesson{
			Title:    l.Title,
			VideoURL: l.VideoURL,
			Order:    l.Order,
		})
	}
	return course
}
