package user

import (
	"context"
	"testing"

	"terminal-terrace/lms-service/internal/cache"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/internal/role"
	"terminal-terrace/lms-service/internal/testutils"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func uniqueName(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

func lookupRoleID(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	found, err := role.NewRoleRepository(db).GetByName(name)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	return found.ID
}

func TestRegisterAssignsDefaultStudentRole(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	created, err := service.Register(context.Background(), RegisterRequest{
		Username: uniqueName("default_role"),
		Email:    uniqueName("default_role") + "@example.com",
		Password: "Password123",
	})
	assert.Nil(t, err)
	assert.NotNil(t, created)

	// 未指定角色时恰好得到一个 student 角色
	assert.Len(t, created.Roles, 1)
	assert.Equal(t, roleModel.Student, created.Roles[0].Name)
}

func TestRegisterWithExplicitRolesSkipsMissing(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	teacherID := lookupRoleID(t, db, roleModel.Teacher)

	// 99999 不存在：跳过，不使整个注册失败
	created, err := service.Register(context.Background(), RegisterRequest{
		Username: uniqueName("skip_missing"),
		Email:    uniqueName("skip_missing") + "@example.com",
		Password: "Password123",
		RoleIDs:  []int{teacherID, 99999},
	})
	assert.Nil(t, err)
	assert.NotNil(t, created)

	assert.Len(t, created.Roles, 1)
	assert.Equal(t, roleModel.Teacher, created.Roles[0].Name)
}

func TestRegisterValidation(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{
			name: "用户名含非法字符",
			req:  RegisterRequest{Username: "bad name!", Email: "a@example.com", Password: "Password123"},
		},
		{
			name: "密码太短",
			req:  RegisterRequest{Username: "gooduser", Email: "a@example.com", Password: "Ab1"},
		},
		{
			name: "密码缺少大写字母",
			req:  RegisterRequest{Username: "gooduser", Email: "a@example.com", Password: "password123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.req)
			assert.NotNil(t, err)
			assert.Equal(t, response.InvalidParameter, err.Code)
		})
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	existing := testutils.CreateTestUser(db)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: existing.Username,
		Email:    uniqueName("other") + "@example.com",
		Password: "Password123",
	})
	assert.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)
}

func TestAssignRolesReplacesAllMemberships(t *testing.T) {
	db := testutils.SetupTestDB(t)
	store := cache.NewMemoryStore()
	service := NewUserService(db, store)
	ctx := context.Background()

	target := testutils.CreateTestUser(db) // 初始为 student
	teacherID := lookupRoleID(t, db, roleModel.Teacher)
	adminID := lookupRoleID(t, db, roleModel.Admin)

	// 预热缓存
	cached, berr := service.GetUser(ctx, target.ID)
	assert.Nil(t, berr)
	assert.Len(t, cached.Roles, 1)

	berr = service.AssignRoles(ctx, target.ID, []int{teacherID, adminID})
	assert.Nil(t, berr)

	// 全量替换：旧的 student 消失，新角色齐全；
	// 且缓存已失效，读到的是新世界
	updated, berr := service.GetUser(ctx, target.ID)
	assert.Nil(t, berr)
	assert.Len(t, updated.Roles, 2)
	assert.True(t, updated.HasRole(roleModel.Teacher))
	assert.True(t, updated.HasRole(roleModel.Admin))
	assert.False(t, updated.HasRole(roleModel.Student))
}

func TestAssignRolesFailsFastWithoutPartialWrite(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())
	ctx := context.Background()

	target := testutils.CreateTestUser(db)
	teacherID := lookupRoleID(t, db, roleModel.Teacher)

	// 任一角色 id 不存在即整体失败
	berr := service.AssignRoles(ctx, target.ID, []int{teacherID, 99999})
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)

	// 原有成员关系原封不动，没有"旧的删了新的没写全"的中间态
	unchanged, getErr := service.GetUser(ctx, target.ID)
	assert.Nil(t, getErr)
	assert.Len(t, unchanged.Roles, 1)
	assert.True(t, unchanged.HasRole(roleModel.Student))
}

func TestAssignRolesUnknownUser(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	teacherID := lookupRoleID(t, db, roleModel.Teacher)

	berr := service.AssignRoles(context.Background(), 999999, []int{teacherID})
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)
}

func TestDeleteUserInvalidatesCache(t *testing.T) {
	db := testutils.SetupTestDB(t)
	store := cache.NewMemoryStore()
	service := NewUserService(db, store)
	ctx := context.Background()

	target := testutils.CreateTestUser(db)

	// 预热
	_, berr := service.GetUser(ctx, target.ID)
	assert.Nil(t, berr)

	berr = service.DeleteUser(ctx, target.ID)
	assert.Nil(t, berr)

	// 删除后不再返回缓存里的旧值
	_, berr = service.GetUser(ctx, target.ID)
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)
}

func TestGetUserNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(db, cache.NewMemoryStore())

	_, berr := service.GetUser(context.Background(), 999999)
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)
}
