package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/models"
)

type EventService struct {
	events EventStore
	links  RegistrationLinkStore
	logger *zap.Logger
}

func NewEventService(events EventStore, links RegistrationLinkStore, logger *zap.Logger) *EventService {
	return &EventService{
		events: events,
		links:  links,
		logger: logger,
	}
}

// List returns events sorted ascending by date. "all" and the empty string
// both mean unfiltered.
func (s *EventService) List(category string) ([]models.Event, error) {
	if category == "all" {
		category = ""
	}
	return s.events.GetAll(category)
}

func (s *EventService) Get(id uint) (*models.Event, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) Create(req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:            req.Title,
		Category:         req.Category,
		Date:             req.Date,
		Location:         req.Location,
		Description:      req.Description,
		FullDescription:  req.FullDescription,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
	}

	if err := s.events.Create(event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) Update(id uint, req models.EventRequest) (*models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Category = req.Category
	event.Date = req.Date
	event.Location = req.Location
	event.Description = req.Description
	event.FullDescription = req.FullDescription
	event.ImageURL = req.ImageURL
	event.RegistrationLink = req.RegistrationLink

	if err := s.events.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes the event and then, unconditionally, any registration links
// that reference it.
func (s *EventService) Delete(id uint) error {
	if err := s.events.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if err := s.links.DeleteByEventID(id); err != nil {
		// The event itself is gone; report the dangling links but do not
		// fail the delete.
		s.logger.Warn("failed to cascade registration link removal",
			zap.Uint("event_id", id),
			zap.Error(err),
		)
	}

	return nil
}
