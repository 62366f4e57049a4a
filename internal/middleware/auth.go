package middleware

import (
	"fmt"

	"terminal-terrace/lms-service/internal/dto"
	"terminal-terrace/lms-service/internal/pkg"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRoles    = "user_roles"
)

// parseToken 从 Authorization header 中解析 token
func parseToken(c *gin.Context) (*pkg.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("未提供认证令牌")
	}

	// 验证格式: Bearer <token>
	if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
		return nil, fmt.Errorf("认证格式错误")
	}

	claims, err := pkg.ParseAccessToken(authHeader[7:])
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}
	return claims, nil
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}

// RequireRoles 授权中间件
// 声明式角色白名单：请求身份的角色集与白名单无交集时拒绝，
// 不会调用被保护的操作
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := CurrentRoles(c)
		for _, have := range roles {
			for _, want := range allowed {
				if have == want {
					c.Next()
					return
				}
			}
		}

		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("权限不足"),
		))
		c.Abort()
	}
}

// CurrentUserID 从上下文获取当前用户 id，未认证时返回 0
func CurrentUserID(c *gin.Context) int {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0
	}
	userID, ok := value.(int)
	if !ok {
		return 0
	}
	return userID
}

// CurrentRoles 从上下文获取当前用户角色集
func CurrentRoles(c *gin.Context) []string {
	value, exists := c.Get(ContextRoles)
	if !exists {
		return nil
	}
	roles, ok := value.([]string)
	if !ok {
		return nil
	}
	return roles
}

// HasRole 判断当前请求身份是否持有指定角色
func HasRole(c *gin.Context, name string) bool {
	for _, r := range CurrentRoles(c) {
		if r == name {
			return true
		}
	}
	return false
}
