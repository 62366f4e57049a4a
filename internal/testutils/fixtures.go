package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	courseModel "terminal-terrace/lms-service/internal/model/course"
	roleModel "terminal-terrace/lms-service/internal/model/role"
	userModel "terminal-terrace/lms-service/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email.
// The user gets the student role unless overridden with WithRoleNames.
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := strings.ReplaceAll(uuid.New().String(), "-", "")
	username := fmt.Sprintf("test_user_%s", uniqueID)
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	// Default password hash
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	cfg := &userConfig{
		user: &userModel.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(passwordHash),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
		roleNames: []string{roleModel.Student},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := db.Create(cfg.user).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	if len(cfg.roleNames) > 0 {
		var roles []roleModel.Role
		if err := db.Where("name IN ?", cfg.roleNames).Find(&roles).Error; err != nil {
			panic(fmt.Sprintf("Failed to load roles for test user: %v", err))
		}
		if err := db.Model(cfg.user).Association("Roles").Append(&roles); err != nil {
			panic(fmt.Sprintf("Failed to assign roles to test user: %v", err))
		}
	}

	// Re-fetch with role associations
	var created userModel.User
	if err := db.Preload("Roles").First(&created, cfg.user.ID).Error; err != nil {
		panic(fmt.Sprintf("Failed to reload test user: %v", err))
	}

	return &created
}

type userConfig struct {
	user      *userModel.User
	roleNames []string
}

// UserOption configures test user
type UserOption func(*userConfig)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(c *userConfig) {
		c.user.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(c *userConfig) {
		c.user.Email = email
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(c *userConfig) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		c.user.PasswordHash = string(hash)
	}
}

// WithRoleNames sets the role memberships by role name
func WithRoleNames(names ...string) UserOption {
	return func(c *userConfig) {
		c.roleNames = names
	}
}

// WithoutRoles creates the user with no role memberships
func WithoutRoles() UserOption {
	return func(c *userConfig) {
		c.roleNames = nil
	}
}

// CreateTestCourse creates a test course owned by the given teacher
func CreateTestCourse(db *gorm.DB, teacherID int) *courseModel.Course {
	course := &courseModel.Course{
		Title:       fmt.Sprintf("test course %s", uuid.New().String()[:8]),
		Description: "created by tests",
		TeacherID:   teacherID,
	}
	if err := db.Create(course).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test course: %v", err))
	}
	return course
}

// CreateTestRole creates an extra (non built-in) role
func CreateTestRole(db *gorm.DB, name string) *roleModel.Role {
	r := &roleModel.Role{
		Name:        name,
		Description: "created by tests",
	}
	if err := db.Create(r).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test role: %v", err))
	}
	return r
}
