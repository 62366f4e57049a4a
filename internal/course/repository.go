package course

import (
	"errors"

	courseModel "terminal-terrace/lms-service/internal/model/course"

	"gorm.io/gorm"
)

// CourseRepository 课程数据访问层
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetByID 按 id 查询课程，不存在时返回 (nil, nil)
func (r *CourseRepository) GetByID(id int) (*courseModel.Course, error) {
	var found courseModel.Course
	if err := r.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetAll 查询全部课程
func (r *CourseRepository) GetAll() ([]courseModel.Course, error) {
	var courses []courseModel.Course
	if err := r.db.Order("id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Create 持久化课程
func (r *CourseRepository) Create(c *courseModel.Course) error {
	return r.db.Create(c).Error
}

// Update 更新课程
func (r *CourseRepository) Update(c *courseModel.Course) error {
	return r.db.Save(c).Error
}

// Delete 删除课程
func (r *CourseRepository) Delete(id int) error {
	return r.db.Delete(&courseModel.Course{}, id).Error
}
