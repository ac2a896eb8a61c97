package repository

import (
	"github.com/webway/campus-events-backend/internal/models"
	"gorm.io/gorm"
)

type RegistrationLinkRepository struct {
	db *gorm.DB
}

func NewRegistrationLinkRepository(db *gorm.DB) *RegistrationLinkRepository {
	return &RegistrationLinkRepository{db: db}
}

func (r *RegistrationLinkRepository) Create(link *models.RegistrationLink) error {
	return r.db.Create(link).Error
}

func (r *RegistrationLinkRepository) GetByID(id uint) (*models.RegistrationLink, error) {
	var link models.RegistrationLink
	if err := r.db.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *RegistrationLinkRepository) GetByEventID(eventID uint) (*models.RegistrationLink, error) {
	var link models.RegistrationLink
	if err := r.db.Where("event_id = ?", eventID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *RegistrationLinkRepository) Update(link *models.RegistrationLink) error {
	return r.db.Save(link).Error
}

func (r *RegistrationLinkRepository) Delete(id uint) error {
	result := r.db.Delete(&models.RegistrationLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistrationLinkRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.RegistrationLink{}).Error
}

// ListWithEventTitle joins each link with its event's title for display.
func (r *RegistrationLinkRepository) ListWithEventTitle() ([]models.RegistrationLinkView, error) {
	var views []models.RegistrationLinkView
	err := r.db.Model(&models.RegistrationLink{}).
		Select("registration_links.id, registration_links.event_id, registration_links.url, registration_links.created_at, registration_links.updated_at, events.title AS event_title").
		Joins("JOIN events ON events.id = registration_links.event_id").
		Order("registration_links.created_at DESC").
		Scan(&views).Error
	return views, err
}
