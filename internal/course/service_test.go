package course

import (
	"context"
	"testing"

	"terminal-terrace/lms-service/internal/cache"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	"terminal-terrace/lms-service/internal/testutils"
	"terminal-terrace/lms-service/pkg/response"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) (*CourseService, *cache.MemoryStore, int) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	store := cache.NewMemoryStore()
	teacher := testutils.CreateTestUser(db, testutils.WithRoleNames(roleModel.Teacher))
	return NewCourseService(db, store), store, teacher.ID
}

func TestGetCoursePopulatesCache(t *testing.T) {
	service, store, teacherID := newTestService(t)
	ctx := context.Background()

	created, berr := service.CreateCourse(ctx, teacherID, CreateCourseRequest{
		Title:       "Go 进阶",
		Description: "并发与接口",
	})
	assert.Nil(t, berr)

	got, berr := service.GetCourse(ctx, created.ID)
	assert.Nil(t, berr)
	assert.Equal(t, "Go 进阶", got.Title)

	// 读过之后缓存里已有该条目
	_, err := store.Get(ctx, cache.EntityKey("Course", created.ID))
	assert.NoError(t, err)
}

func TestUpdateCourseInvalidatesStaleRead(t *testing.T) {
	service, _, teacherID := newTestService(t)
	ctx := context.Background()

	created, berr := service.CreateCourse(ctx, teacherID, CreateCourseRequest{
		Title:       "旧标题",
		Description: "d",
	})
	assert.Nil(t, berr)

	// 预热单条与列表缓存
	_, berr = service.GetCourse(ctx, created.ID)
	assert.Nil(t, berr)
	_, berr = service.ListCourses(ctx)
	assert.Nil(t, berr)

	_, berr = service.UpdateCourse(ctx, created.ID, UpdateCourseRequest{
		Title:       "新标题",
		Description: "d",
	})
	assert.Nil(t, berr)

	// 读到的必须是更新后的值，不能是缓存里的旧世界
	got, berr := service.GetCourse(ctx, created.ID)
	assert.Nil(t, berr)
	assert.Equal(t, "新标题", got.Title)

	list, berr := service.ListCourses(ctx)
	assert.Nil(t, berr)
	found := false
	for _, c := range list {
		if c.ID == created.ID {
			found = true
			assert.Equal(t, "新标题", c.Title)
		}
	}
	assert.True(t, found)
}

func TestCreateCourseInvalidatesCollection(t *testing.T) {
	service, _, teacherID := newTestService(t)
	ctx := context.Background()

	before, berr := service.ListCourses(ctx)
	assert.Nil(t, berr)

	_, berr = service.CreateCourse(ctx, teacherID, CreateCourseRequest{
		Title:       "新课程",
		Description: "d",
	})
	assert.Nil(t, berr)

	after, berr := service.ListCourses(ctx)
	assert.Nil(t, berr)
	assert.Len(t, after, len(before)+1)
}

func TestDeleteCourseRemovesCachedEntry(t *testing.T) {
	service, _, teacherID := newTestService(t)
	ctx := context.Background()

	created, berr := service.CreateCourse(ctx, teacherID, CreateCourseRequest{
		Title:       "待删除",
		Description: "d",
	})
	assert.Nil(t, berr)

	_, berr = service.GetCourse(ctx, created.ID)
	assert.Nil(t, berr)

	berr = service.DeleteCourse(ctx, created.ID)
	assert.Nil(t, berr)

	_, berr = service.GetCourse(ctx, created.ID)
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)
}

func TestUpdateCourseNotFound(t *testing.T) {
	service, _, _ := newTestService(t)

	_, berr := service.UpdateCourse(context.Background(), 999999, UpdateCourseRequest{
		Title:       "x",
		Description: "x",
	})
	assert.NotNil(t, berr)
	assert.Equal(t, response.NotFound, berr.Code)
}
