package pkg

import (
	"errors"
	"strconv"
	"time"

	"terminal-terrace/lms-service/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims JWT 自定义声明
// 每个角色一条 claim，subject 为用户 id，jti 为随机生成，
// 防止同一用户的多个令牌互相混淆
type Claims struct {
	UserID   int      `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateAccessToken 生成访问令牌
// HS256 对称签名，issuer/audience/有效期取配置
func GenerateAccessToken(userID int, username string, roles []string) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(config.Conf.JWT.ExpireMinutes) * time.Minute)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(userID),
			Issuer:    config.Conf.JWT.Issuer,
			Audience:  jwt.ClaimStrings{config.Conf.JWT.Audience},
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}

// ParseAccessToken 解析并验证访问令牌
// 签名、issuer、audience、过期时间任一不通过即拒绝
func ParseAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.Conf.JWT.Secret), nil
	},
		jwt.WithIssuer(config.Conf.JWT.Issuer),
		jwt.WithAudience(config.Conf.JWT.Audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
