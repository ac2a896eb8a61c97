package models

import (
	"time"
)

// RegistrationLink holds the sign-up URL for an event. The unique index on
// EventID enforces the one-link-per-event invariant at the store level, so
// two concurrent upserts for the same event cannot both insert.
type RegistrationLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"eventId" gorm:"uniqueIndex;not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegistrationLinkRequest struct {
	EventID uint   `json:"eventId" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
}

// RegistrationLinkView is a link row with the owning event's title joined in
// for display. The title is never stored on the link itself.
type RegistrationLinkView struct {
	ID         uint      `json:"id"`
	EventID    uint      `json:"eventId"`
	URL        string    `json:"url"`
	EventTitle string    `json:"event_title"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
