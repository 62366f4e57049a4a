package announcement

import (
	"errors"

	announcementModel "terminal-terrace/lms-service/internal/model/announcement"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) GetByID(id int) (*announcementModel.Announcement, error) {
	var found announcementModel.Announcement
	if err := r.db.First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

func (r *AnnouncementRepository) GetAll() ([]announcementModel.Announcement, error) {
	var announcements []announcementModel.Announcement
	if err := r.db.Order("id DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Create(a *announcementModel.Announcement) error {
	return r.db.Create(a).Error
}

func (r *AnnouncementRepository) Update(a *announcementModel.Announcement) error {
	return r.db.Save(a).Error
}

func (r *AnnouncementRepository) Delete(id int) error {
	return r.db.Delete(&announcementModel.Announcement{}, id).Error
}
