package repository

import (
	"context"
	"errors"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create пишет в обе таблицы записей (новую и легаси) одной транзакцией
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, courseID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createEnrollmentTx(tx, studentID, courseID, now)
	})
}

func createEnrollmentTx(tx *gorm.DB, studentID, courseID uuid.UUID, now time.Time) error {
	enrollment := &domain.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrolledAt:     now,
		LastAccessedAt: now,
	}
	if err := tx.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyEnrolled
		}
		return err
	}

	legacy := &domain.LegacyEnrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: now,
	}
	return tx.Create(legacy).Error
}

func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) Get(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Курсы студента для дашборда
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.EnrolledCourse, error) {
	var rows []domain.EnrolledCourse
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Select("enrollments.*, courses.title, courses.cover_url, courses.category").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.student_id = ?", studentID).
		Order("enrollments.last_accessed_at desc").
		Scan(&rows).Error
	return rows, err
}

func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, studentID, courseID uuid.UUID, percent int32) error {
	updates := map[string]interface{}{
		"progress_percent": percent,
		"last_accessed_at": time.Now(),
	}
	if percent >= 100 {
		updates["status"] = "completed"
	}
	return r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Updates(updates).Error
}
