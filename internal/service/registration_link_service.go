package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/models"
)

type RegistrationLinkService struct {
	links  RegistrationLinkStore
	events EventStore
}

func NewRegistrationLinkService(links RegistrationLinkStore, events EventStore) *RegistrationLinkService {
	return &RegistrationLinkService{
		links:  links,
		events: events,
	}
}

// Upsert creates the link for an event, or updates the URL in place when one
// already exists. Each event holds at most one link; the bool reports whether
// a new row was created.
func (s *RegistrationLinkService) Upsert(req models.RegistrationLinkRequest) (*models.RegistrationLink, bool, error) {
	if _, err := s.events.GetByID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrEventNotFound
		}
		return nil, false, err
	}

	link, err := s.links.GetByEventID(req.EventID)
	if err == nil {
		link.URL = req.URL
		if err := s.links.Update(link); err != nil {
			return nil, false, err
		}
		return link, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	link = &models.RegistrationLink{
		EventID: req.EventID,
		URL:     req.URL,
	}
	if err := s.links.Create(link); err != nil {
		// A concurrent upsert won the insert; fall back to updating the
		// row that beat us.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, getErr := s.links.GetByEventID(req.EventID)
			if getErr != nil {
				return nil, false, getErr
			}
			existing.URL = req.URL
			if updErr := s.links.Update(existing); updErr != nil {
				return nil, false, updErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return link, true, nil
}

func (s *RegistrationLinkService) List() ([]models.RegistrationLinkView, error) {
	return s.links.ListWithEventTitle()
}

func (s *RegistrationLinkService) Delete(id uint) error {
	if err := s.links.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	return nil
}
