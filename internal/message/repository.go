package message

import (
	"errors"

	messageModel "terminal-terrace/lms-service/internal/model/message"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) GetByID(id int) (*messageModel.Message, error) {
	var found messageModel.Message
	if err := r.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetByRecipientID 查询某用户收到的全部私信，新的在前
func (r *MessageRepository) GetByRecipientID(userID int) ([]messageModel.Message, error) {
	var messages []messageModel.Message
	if err := r.db.Where("recipient_id = ?", userID).
		Order("id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) Create(m *messageModel.Message) error {
	return r.db.Create(m).Error
}

func (r *MessageRepository) Delete(id int) error {
	return r.db.Delete(&messageModel.Message{}, id).Error
}
