package user

import (
	"time"

	"terminal-terrace/lms-service/internal/model/role"
)

// User 用户实体
// 密码只保存 bcrypt 散列，角色通过 user_roles 关联表维护，
// 创建完成后用户至少持有一个角色（缺省为 student）
type User struct {
	ID           int         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string      `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email        string      `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Roles        []role.Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"roles"`
	CreatedAt    time.Time   `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RoleNames 返回用户全部角色名
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Name
	}
	return names
}

// HasRole 判断用户是否持有指定角色
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
