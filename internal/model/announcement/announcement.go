package announcement

import "time"

// Announcement 全站公告
type Announcement struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	AuthorID  int       `gorm:"column:author_id;not null;index" json:"author_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}
