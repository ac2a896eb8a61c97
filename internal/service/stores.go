package service

import (
	"github.com/webway/campus-events-backend/internal/models"
)

// Store interfaces consumed by the services. The gorm repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdatePassword(id uint, hashedPassword string) error
	Delete(id uint) error
	GetAll() ([]models.User, error)
}

type EventStore interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll(category string) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
}

type RegistrationLinkStore interface {
	Create(link *models.RegistrationLink) error
	GetByID(id uint) (*models.RegistrationLink, error)
	GetByEventID(eventID uint) (*models.RegistrationLink, error)
	Update(link *models.RegistrationLink) error
	Delete(id uint) error
	DeleteByEventID(eventID uint) error
	ListWithEventTitle() ([]models.RegistrationLinkView, error)
}
