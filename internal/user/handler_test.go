package user

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"terminal-terrace/lms-service/internal/cache"
	"terminal-terrace/lms-service/internal/middleware"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	userModel "terminal-terrace/lms-service/internal/model/user"
	"terminal-terrace/lms-service/internal/pkg"
	"terminal-terrace/lms-service/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupUserRoutes(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutils.SetupTestDB(t)

	h := &UserHandler{service: NewUserService(db, cache.NewMemoryStore())}

	r := gin.New()
	users := r.Group("/api/v1/users")
	users.Use(middleware.JWTAuth())
	{
		users.GET("/:id", h.get)

		admin := users.Group("")
		admin.Use(middleware.RequireRoles(roleModel.Admin))
		{
			admin.POST("/register", h.register)
			admin.GET("", h.list)
			admin.DELETE("/:id", h.remove)
			admin.POST("/:id/assign-roles", h.assignRoles)
		}
	}
	return r, db
}

func tokenFor(t *testing.T, u *userModel.User) string {
	t.Helper()
	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.RoleNames())
	assert.NoError(t, err)
	return token
}

func doGet(r *gin.Engine, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListUsersRequiresToken(t *testing.T) {
	r, _ := setupUserRoutes(t)

	w := doGet(r, "/api/v1/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsersForbiddenForStudent(t *testing.T) {
	r, db := setupUserRoutes(t)
	student := testutils.CreateTestUser(db)

	w := doGet(r, "/api/v1/users", tokenFor(t, student))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUsersAllowedForAdmin(t *testing.T) {
	r, db := setupUserRoutes(t)
	admin := testutils.CreateTestUser(db, testutils.WithRoleNames(roleModel.Admin))

	w := doGet(r, "/api/v1/users", tokenFor(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), admin.Username)
}

func TestOwnershipRuleOnGetUser(t *testing.T) {
	r, db := setupUserRoutes(t)
	student := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	token := tokenFor(t, student)

	// 自己的记录可以看
	w := doGet(r, fmt.Sprintf("/api/v1/users/%d", student.ID), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), student.Username)

	// 别人的记录 403
	w = doGet(r, fmt.Sprintf("/api/v1/users/%d", other.ID), token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 目标不存在也是 403：归属检查在查询之前，
	// 非管理员无法借响应差异探测某个 id 是否存在
	w = doGet(r, "/api/v1/users/999999", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminGetUserDistinguishesNotFound(t *testing.T) {
	r, db := setupUserRoutes(t)
	admin := testutils.CreateTestUser(db, testutils.WithRoleNames(roleModel.Admin))
	other := testutils.CreateTestUser(db)
	token := tokenFor(t, admin)

	// 管理员不受归属规则限制
	w := doGet(r, fmt.Sprintf("/api/v1/users/%d", other.ID), token)
	assert.Equal(t, http.StatusOK, w.Code)

	// 管理员查不存在的 id 得到的是 404 而不是 403
	w = doGet(r, "/api/v1/users/999999", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
