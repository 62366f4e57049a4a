package message

import (
	"context"
	"log"

	"terminal-terrace/lms-service/internal/cache"
	messageModel "terminal-terrace/lms-service/internal/model/message"
	"terminal-terrace/lms-service/pkg/response"

	"gorm.io/gorm"
)

const (
	entityType = "Message"
	// 过滤集合：某用户的收件箱
	userFilter = "User"
)

type MessageService struct {
	repo  *MessageRepository
	store cache.Store
}

func NewMessageService(db *gorm.DB, store cache.Store) *MessageService {
	return &MessageService{
		repo:  NewMessageRepository(db),
		store: store,
	}
}

func (s *MessageService) GetMessage(ctx context.Context, id int) (*messageModel.Message, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*messageModel.Message, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[message] 查询私信失败 id=%d: %v", id, err)
		return nil, backendFailure("查询私信失败", err)
	}
	if found == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("私信不存在"),
		)
	}
	return found, nil
}

// Inbox 某用户的收件箱，key 内嵌用户 id
func (s *MessageService) Inbox(ctx context.Context, userID int) ([]messageModel.Message, *response.BusinessError) {
	messages, err := cache.GetOrLoadList(ctx, s.store, cache.FilteredKey(entityType, userFilter, userID), cache.TTL(),
		func(ctx context.Context) ([]messageModel.Message, error) {
			return s.repo.GetByRecipientID(userID)
		})
	if err != nil {
		log.Printf("[message] 查询收件箱失败 user_id=%d: %v", userID, err)
		return nil, backendFailure("查询收件箱失败", err)
	}
	return messages, nil
}

// Send 发送私信
// 收件人的收件箱缓存随之失效
func (s *MessageService) Send(ctx context.Context, senderID int, req SendMessageRequest) (*messageModel.Message, *response.BusinessError) {
	created := &messageModel.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if err := s.repo.Create(created); err != nil {
		log.Printf("[message] 发送私信失败: %v", err)
		return nil, backendFailure("发送私信失败", err)
	}

	cache.Invalidate(ctx, s.store, cache.FilteredKey(entityType, userFilter, created.RecipientID))
	return created, nil
}

// Delete 删除私信
func (s *MessageService) Delete(ctx context.Context, id int) *response.BusinessError {
	found, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[message] 查询私信失败 id=%d: %v", id, err)
		return backendFailure("删除私信失败", err)
	}
	if found == nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("私信不存在"),
		)
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("[message] 删除私信失败 id=%d: %v", id, err)
		return backendFailure("删除私信失败", err)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.FilteredKey(entityType, userFilter, found.RecipientID),
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
