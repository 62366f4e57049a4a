package lesson

import (
	"context"
	"log"

	"terminal-terrace/lms-service/internal/cache"
	lessonModel "terminal-terrace/lms-service/internal/model/lesson"
	"terminal-terrace/lms-service/pkg/response"

	"gorm.io/gorm"
)

const (
	entityType = "Lesson"
	// 过滤集合：某课程的课时列表
	courseFilter = "Course"
)

type LessonService struct {
	repo  *LessonRepository
	store cache.Store
}

func NewLessonService(db *gorm.DB, store cache.Store) *LessonService {
	return &LessonService{
		repo:  NewLessonRepository(db),
		store: store,
	}
}

func (s *LessonService) GetLesson(ctx context.Context, id int) (*lessonModel.Lesson, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*lessonModel.Lesson, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[lesson] 查询课时失败 id=%d: %v", id, err)
		return nil, backendFailure("查询课时失败", err)
	}
	if found == nil {
		return nil, notFound()
	}
	return found, nil
}

// ListByCourse 查询某课程的课时列表，key 内嵌课程 id
func (s *LessonService) ListByCourse(ctx context.Context, courseID int) ([]lessonModel.Lesson, *response.BusinessError) {
	lessons, err := cache.GetOrLoadList(ctx, s.store, cache.FilteredKey(entityType, courseFilter, courseID), cache.TTL(),
		func(ctx context.Context) ([]lessonModel.Lesson, error) {
			return s.repo.GetByCourseID(courseID)
		})
	if err != nil {
		log.Printf("[lesson] 查询课时列表失败 course_id=%d: %v", courseID, err)
		return nil, backendFailure("查询课时列表失败", err)
	}
	return lessons, nil
}

func (s *LessonService) CreateLesson(ctx context.Context, req CreateLessonRequest) (*lessonModel.Lesson, *response.BusinessError) {
	created := &lessonModel.Lesson{
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	}
	if err := s.repo.Create(created); err != nil {
		log.Printf("[lesson] 创建课时失败: %v", err)
		return nil, backendFailure("创建课时失败", err)
	}

	cache.Invalidate(ctx, s.store, cache.FilteredKey(entityType, courseFilter, created.CourseID))
	return created, nil
}

func (s *LessonService) UpdateLesson(ctx context.Context, id int, req UpdateLessonRequest) (*lessonModel.Lesson, *response.BusinessError) {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[lesson] 查询课时失败 id=%d: %v", id, err)
		return nil, backendFailure("更新课时失败", err)
	}
	if found == nil {
		return nil, notFound()
	}

	found.Title = req.Title
	found.Content = req.Content
	found.Position = req.Position
	if err := s.repo.Update(found); err != nil {
		log.Printf("[lesson] 更新课时失败 id=%d: %v", id, err)
		return nil, backendFailure("更新课时失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.FilteredKey(entityType, courseFilter, found.CourseID),
	)
	return found, nil
}

func (s *LessonService) DeleteLesson(ctx context.Context, id int) *response.BusinessError {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[lesson] 查询课时失败 id=%d: %v", id, err)
		return backendFailure("删除课时失败", err)
	}
	if found == nil {
		return notFound()
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("[lesson] 删除课时失败 id=%d: %v", id, err)
		return backendFailure("删除课时失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.FilteredKey(entityType, courseFilter, found.CourseID),
	)
	return nil
}

func notFound() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("课时不存在"),
	)
}

func backendFailure(msg string, err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}
