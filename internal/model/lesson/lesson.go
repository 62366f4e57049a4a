package lesson

import "time"

// Lesson 课时实体，归属于某个课程
type Lesson struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CourseID  int       `gorm:"column:course_id;not null;index" json:"course_id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Position  int       `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}
