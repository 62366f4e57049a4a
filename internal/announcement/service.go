package announcement

import (
	"context"
	"log"

	"terminal-terrace/lms-service/internal/cache"
	announcementModel "terminal-terrace/lms-service/internal/model/announcement"
	"terminal-terrace/lms-service/pkg/response"

	"gorm.io/gorm"
)

const entityType = "Announcement"

type AnnouncementService struct {
	repo  *AnnouncementRepository
	store cache.Store
}

func NewAnnouncementService(db *gorm.DB, store cache.Store) *AnnouncementService {
	return &AnnouncementService{
		repo:  NewAnnouncementRepository(db),
		store: store,
	}
}

func (s *AnnouncementService) Get(ctx context.Context, id int) (*announcementModel.Announcement, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*announcementModel.Announcement, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[announcement] 查询公告失败 id=%d: %v", id, err)
		return nil, backendFailure("查询公告失败", err)
	}
	if found == nil {
		return nil, notFound()
	}
	return found, nil
}

func (s *AnnouncementService) List(ctx context.Context) ([]announcementModel.Announcement, *response.BusinessError) {
	announcements, err := cache.GetOrLoadList(ctx, s.store, cache.CollectionKey(entityType), cache.TTL(),
		func(ctx context.Context) ([]announcementModel.Announcement, error) {
			return s.repo.GetAll()
		})
	if err != nil {
		log.Printf("[announcement] 查询公告列表失败: %v", err)
		return nil, backendFailure("查询公告列表失败", err)
	}
	return announcements, nil
}

func (s *AnnouncementService) Create(ctx context.Context, authorID int, req CreateAnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError) {
	created := &announcementModel.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: authorID,
	}
	if err := s.repo.Create(created); err != nil {
		log.Printf("[announcement] 发布公告失败: %v", err)
		return nil, backendFailure("发布公告失败", err)
	}

	cache.Invalidate(ctx, s.store, cache.CollectionKey(entityType))
	return created, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id int, req UpdateAnnouncementRequest) (*announcementModel.Announcement, *response.BusinessError) {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[announcement] 查询公告失败 id=%d: %v", id, err)
		return nil, backendFailure("更新公告失败", err)
	}
	if found == nil {
		return nil, notFound()
	}

	found.Title = req.Title
	found.Body = req.Body
	if err := s.repo.Update(found); err != nil {
		log.Printf("[announcement] 更新公告失败 id=%d: %v", id, err)
		return nil, backendFailure("更新公告失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.CollectionKey(entityType),
	)
	return found, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int) *response.BusinessError {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[announcement] 查询公告失败 id=%d: %v", id, err)
		return backendFailure("删除公告失败", err)
	}
	if found == nil {
		return notFound()
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("[announcement] 删除公告失败 id=%d: %v", id, err)
		return backendFailure("删除公告失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.CollectionKey(entityType),
	)
	return nil
}

func notFound() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("公告不存在"),
	)
}

func backendFailure(msg string, err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}
