package pkg

import (
	"testing"
	"time"

	"terminal-terrace/lms-service/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupJWTConfig() {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:        "test-secret-key",
			Issuer:        "lms-service",
			Audience:      "lms-clients",
			ExpireMinutes: 60,
		},
	}
}

func TestGenerateAccessToken(t *testing.T) {
	setupJWTConfig()

	tests := []struct {
		name     string
		userID   int
		username string
		roles    []string
		wantErr  bool
	}{
		{
			name:     "生成有效的访问令牌",
			userID:   1,
			username: "testuser",
			roles:    []string{"student"},
			wantErr:  false,
		},
		{
			name:     "多角色用户",
			userID:   2,
			username: "teacher_admin",
			roles:    []string{"teacher", "admin"},
			wantErr:  false,
		},
		{
			name:     "无角色用户",
			userID:   3,
			username: "norole",
			roles:    nil,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAccessToken(tt.userID, tt.username, tt.roles)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := ParseAccessToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.roles, claims.Roles)
			assert.NotEmpty(t, claims.ID) // jti 唯一
		})
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	setupJWTConfig()

	first, err := GenerateAccessToken(1, "testuser", []string{"student"})
	assert.NoError(t, err)
	second, err := GenerateAccessToken(1, "testuser", []string{"student"})
	assert.NoError(t, err)

	firstClaims, err := ParseAccessToken(first)
	assert.NoError(t, err)
	secondClaims, err := ParseAccessToken(second)
	assert.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateAccessToken(1, "testuser", []string{"student"})
	assert.NoError(t, err)

	config.Conf.JWT.Secret = "a-different-secret"
	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	setupJWTConfig()

	// 直接构造一个已过期的令牌
	claims := &Claims{
		UserID:   1,
		Username: "testuser",
		Roles:    []string{"student"},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-token",
			Subject:   "1",
			Issuer:    config.Conf.JWT.Issuer,
			Audience:  jwt.ClaimStrings{config.Conf.JWT.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Conf.JWT.Secret))
	assert.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseAccessTokenRejectsWrongIssuerOrAudience(t *testing.T) {
	setupJWTConfig()

	build := func(issuer, audience string) string {
		claims := &Claims{
			UserID:   1,
			Username: "testuser",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "token-id",
				Subject:   "1",
				Issuer:    issuer,
				Audience:  jwt.ClaimStrings{audience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(config.Conf.JWT.Secret))
		assert.NoError(t, err)
		return token
	}

	_, err := ParseAccessToken(build("some-other-service", config.Conf.JWT.Audience))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken(build(config.Conf.JWT.Issuer, "some-other-clients"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsUnsignedToken(t *testing.T) {
	setupJWTConfig()

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Conf.JWT.Issuer,
			Audience:  jwt.ClaimStrings{config.Conf.JWT.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
