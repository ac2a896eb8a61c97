package models

import (
	"time"
)

type Event struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Category         string    `json:"category" gorm:"not null;index"`
	Date             time.Time `json:"date" gorm:"not null"`
	Location         string    `json:"location" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null"`
	FullDescription  string    `json:"full_description" gorm:"not null"`
	ImageURL         string    `json:"image_url" gorm:"default:''"`
	RegistrationLink string    `json:"registration_link" gorm:"default:''"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title            string    `json:"title" validate:"required"`
	Category         string    `json:"category" validate:"required"`
	Date             time.Time `json:"date" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	FullDescription  string    `json:"full_description" validate:"required"`
	ImageURL         string    `json:"image_url"`
	RegistrationLink string    `json:"registration_link"`
}
