package user

import (
	"errors"

	roleModel "terminal-terrace/lms-service/internal/model/role"
	userModel "terminal-terrace/lms-service/internal/model/user"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 按 id 查询用户（含角色），不存在时返回 (nil, nil)
func (r *UserRepository) GetByID(id int) (*userModel.User, error) {
	var found userModel.User
	if err := r.db.Preload("Roles").First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetByUsername 按用户名查询用户（含角色），不存在时返回 (nil, nil)
func (r *UserRepository) GetByUsername(username string) (*userModel.User, error) {
	var found userModel.User
	if err := r.db.Preload("Roles").Where("username = ?", username).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// ExistsByUsernameOrEmail 判断用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	if err := r.db.Model(&userModel.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll 查询全部用户（含角色）
func (r *UserRepository) GetAll() ([]userModel.User, error) {
	var users []userModel.User
	if err := r.db.Preload("Roles").Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create 持久化用户记录
func (r *UserRepository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}

// AppendRoles 为用户追加角色
func (r *UserRepository) AppendRoles(u *userModel.User, roles []roleModel.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return r.db.Model(u).Association("Roles").Append(&roles)
}

// ReplaceRoles 全量替换用户角色
// 删除旧关联与写入新关联在同一事务内提交，
// 不会出现旧角色已删、新角色只写了一半的中间态
func (r *UserRepository) ReplaceRoles(userID int, roles []roleModel.Role) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		target := userModel.User{ID: userID}
		return tx.Model(&target).Association("Roles").Replace(&roles)
	})
}

// Delete 删除用户
func (r *UserRepository) Delete(id int) error {
	return r.db.Select("Roles").Delete(&userModel.User{ID: id}).Error
}
