package message

import "time"

// Message 站内私信
type Message struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID    int       `gorm:"column:sender_id;not null;index" json:"sender_id"`
	RecipientID int       `gorm:"column:recipient_id;not null;index" json:"recipient_id"`
	Subject     string    `gorm:"column:subject;type:varchar(200);not null" json:"subject"`
	Body        string    `gorm:"column:body;type:text" json:"body"`
	ReadAt      *time.Time `gorm:"column:read_at;type:timestamp" json:"read_at"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
