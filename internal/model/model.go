package model

import (
	"fmt"
	"log"
	"os"

	"terminal-terrace/lms-service/internal/model/announcement"
	"terminal-terrace/lms-service/internal/model/course"
	"terminal-terrace/lms-service/internal/model/lesson"
	"terminal-terrace/lms-service/internal/model/message"
	"terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/internal/model/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetModels 返回所有需要迁移的模型
func GetModels() []interface{} {
	return []interface{}{
		&role.Role{},
		&user.User{},
		&course.Course{},
		&lesson.Lesson{},
		&message.Message{},
		&announcement.Announcement{},
	}
}

func InitTable(db *gorm.DB) error {
	models := GetModels()

	// 执行自动迁移
	err := db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("数据库表迁移失败: %v", err)
	}

	if err := SeedRoles(db); err != nil {
		return err
	}
	return SeedAdmin(db)
}

// SeedRoles 预置内置角色，幂等
func SeedRoles(db *gorm.DB) error {
	seeds := []role.Role{
		{Name: role.Admin, Description: "系统管理员"},
		{Name: role.Teacher, Description: "教师"},
		{Name: role.Student, Description: "学生"},
	}

	for _, r := range seeds {
		var existing role.Role
		if err := db.Where(role.Role{Name: r.Name}).
			Attrs(role.Role{Description: r.Description}).
			FirstOrCreate(&existing).Error; err != nil {
			return fmt.Errorf("预置角色 %s 失败: %v", r.Name, err)
		}
	}

	return nil
}

// SeedAdmin 预置初始管理员，幂等
// 注册接口仅管理员可用，没有初始管理员新部署无法完成首次登录。
// 凭证从环境变量读取，未设置时使用缺省值，部署后应立即修改
func SeedAdmin(db *gorm.DB) error {
	username := envOrDefault("ADMIN_USERNAME", "admin")
	email := envOrDefault("ADMIN_EMAIL", "admin@example.com")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123456"
		log.Printf("[model] ADMIN_PASSWORD 未设置，初始管理员使用缺省密码")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("预置管理员密码散列失败: %v", err)
	}

	var admin user.User
	if err := db.Where(user.User{Username: username}).
		Attrs(user.User{Email: email, PasswordHash: string(hash)}).
		FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("预置管理员 %s 失败: %v", username, err)
	}

	var adminRole role.Role
	if err := db.Where(role.Role{Name: role.Admin}).First(&adminRole).Error; err != nil {
		return fmt.Errorf("查询管理员角色失败: %v", err)
	}

	// 成员关系已存在时不重复写入
	var count int64
	if err := db.Table("user_roles").
		Where("user_id = ? AND role_id = ?", admin.ID, adminRole.ID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("查询管理员角色成员关系失败: %v", err)
	}
	if count == 0 {
		if err := db.Model(&admin).Association("Roles").Append(&adminRole); err != nil {
			return fmt.Errorf("预置管理员角色失败: %v", err)
		}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
