package model_test

import (
	"testing"

	"terminal-terrace/lms-service/internal/model"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	userModel "terminal-terrace/lms-service/internal/model/user"
	"terminal-terrace/lms-service/internal/testutils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedRolesIdempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)

	// SetupTestDB 已经预置过一次，再跑一次不产生重复
	assert.NoError(t, model.SeedRoles(db))

	var count int64
	assert.NoError(t, db.Model(&roleModel.Role{}).
		Where("name IN ?", roleModel.KnownNames()).
		Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSeedAdminCreatesBootstrapAccount(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "bootstrap_admin")
	t.Setenv("ADMIN_EMAIL", "bootstrap_admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "Bootstrap123")

	db := testutils.SetupTestDB(t)
	assert.NoError(t, model.SeedAdmin(db))

	// 新部署登录是唯一公开入口，必须存在一个可登录的管理员
	var admin userModel.User
	assert.NoError(t, db.Preload("Roles").
		Where("username = ?", "bootstrap_admin").
		First(&admin).Error)
	assert.True(t, admin.HasRole(roleModel.Admin))
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte("Bootstrap123")))
}

func TestSeedAdminIdempotent(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "bootstrap_admin")
	t.Setenv("ADMIN_EMAIL", "bootstrap_admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "Bootstrap123")

	db := testutils.SetupTestDB(t)
	assert.NoError(t, model.SeedAdmin(db))
	assert.NoError(t, model.SeedAdmin(db))

	var count int64
	assert.NoError(t, db.Model(&userModel.User{}).
		Where("username = ?", "bootstrap_admin").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// 角色成员关系也不重复
	var admin userModel.User
	assert.NoError(t, db.Preload("Roles").
		Where("username = ?", "bootstrap_admin").
		First(&admin).Error)
	assert.Len(t, admin.Roles, 1)
}
