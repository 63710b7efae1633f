package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shikkhabazar/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

// === КЕШИРУЕМ СПИСОК КУРСОВ ===
func (r *CourseRepository) List(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error) {
	key := fmt.Sprintf("courses:list:%s:%s:%d:%d", search, category, limit, offset)

	// 1. Читаем из кеша
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var result struct {
			Courses []domain.Course
			Total   int64
		}
		if json.Unmarshal([]byte(val), &result) == nil {
			return result.Courses, result.Total, nil
		}
	}

	// 2. Читаем из БД (если нет в кеше)
	var courses []domain.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Course{}).Where("is_published = ?", true)
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err = query.Limit(limit).Offset(offset).Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	// 3. Пишем в кеш (на 10 минут, каталог меняется редко)
	cacheData := struct {
		Courses []domain.Course
		Total   int64
	}{courses, total}

	if data, err := json.Marshal(cacheData); err == nil {
		r.rdb.Set(ctx, key, data, 10*time.Minute)
	}

	return courses, total, nil
}

// === КЕШИРУЕМ ОДИН КУРС (С УРОКАМИ) ===
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	key := "course:detail:" + id.String()

	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var c domain.Course
		if json.Unmarshal([]byte(val), &c) == nil {
			return &c, nil
		}
	}

	var course domain.Course
	err = r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	if data, err := json.Marshal(course); err == nil {
		r.rdb.Set(ctx, key, data, 10*time.Minute)
	}

	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return err
	}
	r.invalidateLists(ctx)
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}
	r.invalidate(ctx, course.ID)
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id).Error; err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CourseRepository) invalidate(ctx context.Context, id uuid.UUID) {
	r.rdb.Del(ctx, "course:detail:"+id.String())
	r.invalidateLists(ctx)
}

// Списки кешируются по комбинации фильтров, сносим по шаблону
func (r *CourseRepository) invalidateLists(ctx context.Context) {
	iter := r.rdb.Scan(ctx, 0, "courses:list:*", 100).Iterator()
	for iter.Next(ctx) {
		r.rdb.Del(ctx, iter.Val())
	}
}
