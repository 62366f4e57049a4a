package role

import (
	"context"
	"log"

	"terminal-terrace/lms-service/internal/cache"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/pkg/response"

	"gorm.io/gorm"
)

// 缓存实体类型名
const entityType = "Role"

// RoleService 角色服务，读路径走 cache-aside
type RoleService struct {
	repo  *RoleRepository
	store cache.Store
}

// NewRoleService 创建角色服务实例
func NewRoleService(db *gorm.DB, store cache.Store) *RoleService {
	return &RoleService{
		repo:  NewRoleRepository(db),
		store: store,
	}
}

// GetRole 查询单个角色
func (s *RoleService) GetRole(ctx context.Context, id int) (*roleModel.Role, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*roleModel.Role, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[role] 查询角色失败 id=%d: %v", id, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询角色失败"),
			response.WithError(err),
		)
	}
	if found == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("角色不存在"),
		)
	}
	return found, nil
}

// ListRoles 查询全部角色
func (s *RoleService) ListRoles(ctx context.Context) ([]roleModel.Role, *response.BusinessError) {
	roles, err := cache.GetOrLoadList(ctx, s.store, cache.CollectionKey(entityType), cache.TTL(),
		func(ctx context.Context) ([]roleModel.Role, error) {
			return s.repo.GetAll()
		})
	if err != nil {
		log.Printf("[role] 查询角色列表失败: %v", err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询角色列表失败"),
			response.WithError(err),
		)
	}
	return roles, nil
}
