package user

import (
	"context"
	"log"
	"regexp"

	"terminal-terrace/lms-service/internal/cache"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	userModel "terminal-terrace/lms-service/internal/model/user"
	"terminal-terrace/lms-service/internal/role"
	"terminal-terrace/lms-service/pkg/response"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	lowerRegex    = regexp.MustCompile(`[a-z]`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

// 缓存实体类型名
const entityType = "User"

// UserService 用户服务
// 读路径走 cache-aside，写路径先提交实体存储再失效缓存
type UserService struct {
	repo     *UserRepository
	roleRepo *role.RoleRepository
	store    cache.Store
}

// NewUserService 创建用户服务实例
func NewUserService(db *gorm.DB, store cache.Store) *UserService {
	return &UserService{
		repo:     NewUserRepository(db),
		roleRepo: role.NewRoleRepository(db),
		store:    store,
	}
}

// GetUser 查询单个用户
func (s *UserService) GetUser(ctx context.Context, id int) (*userModel.User, *response.BusinessError) {
	found, err := cache.GetOrLoad(ctx, s.store, cache.EntityKey(entityType, id), cache.TTL(),
		func(ctx context.Context) (*userModel.User, error) {
			return s.repo.GetByID(id)
		})
	if err != nil {
		log.Printf("[user] 查询用户失败 id=%d: %v", id, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}
	if found == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}
	return found, nil
}

// ListUsers 查询全部用户
func (s *UserService) ListUsers(ctx context.Context) ([]userModel.User, *response.BusinessError) {
	users, err := cache.GetOrLoadList(ctx, s.store, cache.CollectionKey(entityType), cache.TTL(),
		func(ctx context.Context) ([]userModel.User, error) {
			return s.repo.GetAll()
		})
	if err != nil {
		log.Printf("[user] 查询用户列表失败: %v", err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户列表失败"),
			response.WithError(err),
		)
	}
	return users, nil
}

// Register 创建用户
// 流程：校验 → 散列密码 → 持久化 → 分配角色 → 重查完整角色图
// 显式指定的角色 id 不存在时记日志跳过，不使整个注册失败；
// 未指定角色时分配缺省 student 角色
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*userModel.User, *response.BusinessError) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// 用户名/邮箱唯一性
	taken, err := s.repo.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		log.Printf("[user] 唯一性检查失败 username=%s: %v", req.Username, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注册失败"),
			response.WithError(err),
		)
	}
	if taken {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名或邮箱已被占用"),
		)
	}

	// 散列密码，绝不保存明文
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码处理失败"),
			response.WithError(err),
		)
	}

	newUser := &userModel.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}
	if err := s.repo.Create(newUser); err != nil {
		log.Printf("[user] 持久化用户失败 username=%s: %v", req.Username, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注册失败"),
			response.WithError(err),
		)
	}

	// 角色分配：逐个查找，缺失的跳过不报错
	var roles []roleModel.Role
	if len(req.RoleIDs) > 0 {
		for _, roleID := range req.RoleIDs {
			found, err := s.roleRepo.GetByID(roleID)
			if err != nil {
				log.Printf("[user] 查询角色失败 role_id=%d: %v", roleID, err)
				continue
			}
			if found == nil {
				log.Printf("[user] 角色不存在，跳过 role_id=%d", roleID)
				continue
			}
			roles = append(roles, *found)
		}
	} else {
		// 缺省角色
		defaultRole, err := s.roleRepo.GetByName(roleModel.Student)
		if err != nil {
			log.Printf("[user] 查询缺省角色失败: %v", err)
		} else if defaultRole == nil {
			log.Printf("[user] 缺省角色 %s 不存在", roleModel.Student)
		} else {
			roles = append(roles, *defaultRole)
		}
	}

	if err := s.repo.AppendRoles(newUser, roles); err != nil {
		log.Printf("[user] 分配角色失败 user_id=%d: %v", newUser.ID, err)
	}

	// 重查以获得完整的角色关联
	created, err := s.repo.GetByID(newUser.ID)
	if err != nil || created == nil {
		log.Printf("[user] 重查用户失败 user_id=%d: %v", newUser.ID, err)
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注册失败"),
			response.WithError(err),
		)
	}

	// 列表缓存已包含旧世界，失效之
	cache.Invalidate(ctx, s.store, cache.CollectionKey(entityType))

	return created, nil
}

// AssignRoles 全量替换用户角色
// 与注册不同：任何一个角色 id 不存在即整体失败（NotFound），
// 删除与写入在同一事务内，不会留下少角色的中间态
func (s *UserService) AssignRoles(ctx context.Context, userID int, roleIDs []int) *response.BusinessError {
	target, err := s.repo.GetByID(userID)
	if err != nil {
		log.Printf("[user] 查询用户失败 user_id=%d: %v", userID, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("角色分配失败"),
			response.WithError(err),
		)
	}
	if target == nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	roles, err := s.roleRepo.GetByIDs(roleIDs)
	if err != nil {
		log.Printf("[user] 批量查询角色失败: %v", err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("角色分配失败"),
			response.WithError(err),
		)
	}
	if missing := missingIDs(roleIDs, roles); len(missing) > 0 {
		log.Printf("[user] 角色不存在 role_ids=%v", missing)
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("指定的角色不存在"),
		)
	}

	if err := s.repo.ReplaceRoles(userID, roles); err != nil {
		log.Printf("[user] 替换角色失败 user_id=%d: %v", userID, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("角色分配失败"),
			response.WithError(err),
		)
	}

	// 用户缓存里嵌着角色视图，成员关系变了必须失效
	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, userID),
		cache.CollectionKey(entityType),
	)

	return nil
}

// DeleteUser 删除用户
func (s *UserService) DeleteUser(ctx context.Context, id int) *response.BusinessError {
	target, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("[user] 查询用户失败 user_id=%d: %v", id, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除用户失败"),
			response.WithError(err),
		)
	}
	if target == nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("[user] 删除用户失败 user_id=%d: %v", id, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除用户失败"),
			response.WithError(err),
		)
	}

	cache.Invalidate(ctx, s.store,
		cache.EntityKey(entityType, id),
		cache.CollectionKey(entityType),
	)

	return nil
}

// validateRequest 注册参数校验
func (s *UserService) validateRequest(req RegisterRequest) *response.BusinessError {
	if len(req.Username) < 3 || len(req.Username) > 50 || !usernameRegex.MatchString(req.Username) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名只能包含字母、数字和下划线，长度 3-50"),
		)
	}

	if len(req.Password) < 8 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度至少 8 位"),
		)
	}
	if !upperRegex.MatchString(req.Password) || !lowerRegex.MatchString(req.Password) || !digitRegex.MatchString(req.Password) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码必须包含大写字母、小写字母和数字"),
		)
	}

	return nil
}

// missingIDs 找出查询结果中缺失的角色 id
func missingIDs(wanted []int, found []roleModel.Role) []int {
	present := make(map[int]bool, len(found))
	for _, r := range found {
		present[r.ID] = true
	}

	var missing []int
	for _, id := range wanted {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
