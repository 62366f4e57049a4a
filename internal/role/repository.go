package role

import (
	"errors"

	roleModel "terminal-terrace/lms-service/internal/model/role"

	"gorm.io/gorm"
)

// RoleRepository 角色数据访问层
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓库实例
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByID 按 id 查询角色，不存在时返回 (nil, nil)
func (r *RoleRepository) GetByID(id int) (*roleModel.Role, error) {
	var found roleModel.Role
	if err := r.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetByName 按名称查询角色，不存在时返回 (nil, nil)
func (r *RoleRepository) GetByName(name string) (*roleModel.Role, error) {
	var found roleModel.Role
	if err := r.db.Where("name = ?", name).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetAll 查询全部角色
func (r *RoleRepository) GetAll() ([]roleModel.Role, error) {
	var roles []roleModel.Role
	if err := r.db.Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetByIDs 批量查询角色
func (r *RoleRepository) GetByIDs(ids []int) ([]roleModel.Role, error) {
	if len(ids) == 0 {
		return []roleModel.Role{}, nil
	}
	var roles []roleModel.Role
	if err := r.db.Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
