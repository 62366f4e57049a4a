package role

import "time"

// 系统内置角色为封闭集合，授权检查只认这三个名字，
// 避免字符串拼写错误悄悄放行或拒绝请求
const (
	Admin   = "admin"
	Teacher = "teacher"
	Student = "student"
)

// KnownNames 返回全部内置角色名
func KnownNames() []string {
	return []string{Admin, Teacher, Student}
}

// IsKnown 判断角色名是否属于封闭集合
func IsKnown(name string) bool {
	switch name {
	case Admin, Teacher, Student:
		return true
	}
	return false
}

// Role 角色实体
type Role struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}
