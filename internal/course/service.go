package course

import (
	"context"
	"log"

	"terminal-terrace/lms-service/internal/cache"
	courseModel "terminal-terrace/lms-service/internal/model/course"
	"terminal-terrace/lms-service/pkg/response"

	"gorm.io/gorm"
)

const entityType = "Course"

// CourseService 课程服务
type CourseService struct {
	repo  *CourseRepository
	store cache.Store
}

func NewCourseService(db *gorm.DB, store cache.Store) *CourseService {
	return &CourseService{
		repo:  NewCourseRepository(db),
		store: store,
	}
}

// GetCourse 查询单个课程
func (s *CourseService) GetCourse(ctx context.Context, id int) (*courseModel.Course, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*courseModel.Course, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[course] 查询课程失败 id=%d: %v", id, err)
		return nil, backendFailure("查询课程失败", err)
	}
	if found == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("课程不存在"),
		)
	}
	return found, nil
}

// ListCourses 查询全部课程
func (s *CourseService) ListCourses(ctx context.Context) ([]courseModel.Course, *response.BusinessError) {
	courses, err := cache.GetOrLoadList(ctx, s.store, cache.CollectionKey(entityType), cache.TTL(),
		func(ctx context.Context) ([]courseModel.Course, error) {
			return s.repo.GetAll()
		})
	if err != nil {
		log.Printf("[course] 查询课程列表失败: %v", err)
		return nil, backendFailure("查询课程列表失败", err)
	}
	return courses, nil
}

// CreateCourse 创建课程
// 新 id 对调用方尚不可见，只需失效集合缓存
func (s *CourseService) CreateCourse(ctx context.Context, teacherID int, req CreateCourseRequest) (*courseModel.Course, *response.BusinessError) {
	created := &courseModel.Course{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacherID,
	}
	if err := s.repo.Create(created); err != nil {
		log.Printf("[course] 创建课程失败: %v", err)
		return nil, backendFailure("创建课程失败", err)
	}

	cache.Invalidate(ctx, s.store, cache.CollectionKey(entityType))
	return created, nil
}

// UpdateCourse 更新课程
func (s *CourseService) UpdateCourse(ctx context.Context, id int, req UpdateCourseRequest) (*courseModel.Course, *response.BusinessError) {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[course] 查询课程失败 id=%d: %v", id, err)
		return nil, backendFailure("更新课程失败", err)
	}
	if found == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("课程不存在"),
		)
	}

	found.Title = req.Title
	found.Description = req.Description
	if err := s.repo.Update(found); err != nil {
		log.Printf("[course] 更新课程失败 id=%d: %v", id, err)
		return nil, backendFailure("更新课程失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.CollectionKey(entityType),
	)
	return found, nil
}

// DeleteCourse 删除课程
func (s *CourseService) DeleteCourse(ctx context.Context, id int) *response.BusinessError {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[course] 查询课程失败 id=%d: %v", id, err)
		return backendFailure("删除课程失败", err)
	}
	if found == nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("课程不存在"),
		)
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("[course] 删除课程失败 id=%d: %v", id, err)
		return backendFailure("删除课程失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.CollectionKey(entityType),
	)
	return nil
}

func backendFailure(msg string, err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}
