package lesson

import (
	"errors"

	lessonModel "terminal-terrace/lms-service/internal/model/lesson"

	"gorm.io/gorm"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

func (r *LessonRepository) GetByID(id int) (*lessonModel.Lesson, error) {
	var found lessonModel.Lesson
	if err := r.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// GetByCourseID 查询某课程的全部课时，按位置排序
func (r *LessonRepository) GetByCourseID(courseID int) ([]lessonModel.Lesson, error) {
	var lessons []lessonModel.Lesson
	if err := r.db.Where("course_id = ?", courseID).
		Order("position ASC, id ASC").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonRepository) Create(l *lessonModel.Lesson) error {
	return r.db.Create(l).Error
}

func (r *LessonRepository) Update(l *lessonModel.Lesson) error {
	return r.db.Save(l).Error
}

func (r *LessonRepository) Delete(id int) error {
	return r.db.Delete(&lessonModel.Lesson{}, id).Error
}
