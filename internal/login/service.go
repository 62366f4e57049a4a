package login

import (
	"log"

	userModel "terminal-terrace/lms-service/internal/model/user"
	"terminal-terrace/lms-service/internal/pkg"
	"terminal-terrace/lms-service/internal/user"
	"terminal-terrace/lms-service/pkg/response"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginService 账号密码登录
type LoginService struct {
	userRepo *user.UserRepository
}

// NewLoginService 创建登录服务实例
func NewLoginService(db *gorm.DB) *LoginService {
	return &LoginService{userRepo: user.NewUserRepository(db)}
}

// Login 验证凭证并签发访问令牌
// 用户不存在与密码错误统一返回同一错误，不泄露哪一项错了
func (s *LoginService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	found, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		log.Printf("[login] 查询用户失败 username=%s: %v", req.Username, err)
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登录失败"),
			response.WithError(err),
		)
	}
	if found == nil {
		return LoginResponse{}, invalidCredentials()
	}

	// 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, invalidCredentials()
	}

	token, err := s.issueToken(found)
	if err != nil {
		log.Printf("[login] 签发令牌失败 user_id=%d: %v", found.ID, err)
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
			response.WithError(err),
		)
	}

	return LoginResponse{Token: token}, nil
}

// issueToken 为用户签发 JWT，每个角色一条 claim
func (s *LoginService) issueToken(u *userModel.User) (string, error) {
	return pkg.GenerateAccessToken(u.ID, u.Username, u.RoleNames())
}

func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidCredentials),
		response.WithErrorMessage("用户名或密码错误"),
	)
}
