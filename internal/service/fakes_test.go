package service

import (
	"sort"

	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/models"
)

// In-memory store fakes. They mirror the store-level guarantees the real
// repositories get from Postgres: unique email, unique link per event, and
// gorm sentinel errors.

type fakeUserStore struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]models.User), nextID: 1}
}

func (f *fakeUserStore) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) EmailExists(email string) (bool, error) {
	_, err := f.GetByEmail(email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) UpdatePassword(id uint, hashedPassword string) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeEventStore struct {
	events map[uint]models.Event
	nextID uint
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[uint]models.Event), nextID: 1}
}

func (f *fakeEventStore) Create(event *models.Event) error {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventStore) GetByID(id uint) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (f *fakeEventStore) GetAll(category string) ([]models.Event, error) {
	out := make([]models.Event, 0, len(f.events))
	for _, e := range f.events {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeEventStore) Update(event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventStore) Delete(id uint) error {
	if _, ok := f.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeLinkStore struct {
	links  map[uint]models.RegistrationLink
	events *fakeEventStore
	nextID uint
}

func newFakeLinkStore(events *fakeEventStore) *fakeLinkStore {
	return &fakeLinkStore{
		links:  make(map[uint]models.RegistrationLink),
		events: events,
		nextID: 1,
	}
}

func (f *fakeLinkStore) Create(link *models.RegistrationLink) error {
	for _, l := range f.links {
		if l.EventID == link.EventID {
			return gorm.ErrDuplicatedKey
		}
	}
	link.ID = f.nextID
	f.nextID++
	f.links[link.ID] = *link
	return nil
}

func (f *fakeLinkStore) GetByID(id uint) (*models.RegistrationLink, error) {
	l, ok := f.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (f *fakeLinkStore) GetByEventID(eventID uint) (*models.RegistrationLink, error) {
	for _, l := range f.links {
		if l.EventID == eventID {
			l := l
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLinkStore) Update(link *models.RegistrationLink) error {
	if _, ok := f.links[link.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.links[link.ID] = *link
	return nil
}

func (f *fakeLinkStore) Delete(id uint) error {
	if _, ok := f.links[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.links, id)
	return nil
}

func (f *fakeLinkStore) DeleteByEventID(eventID uint) error {
	for id, l := range f.links {
		if l.EventID == eventID {
			delete(f.links, id)
		}
	}
	return nil
}

func (f *fakeLinkStore) ListWithEventTitle() ([]models.RegistrationLinkView, error) {
	out := make([]models.RegistrationLinkView, 0, len(f.links))
	for _, l := range f.links {
		view := models.RegistrationLinkView{
			ID:        l.ID,
			EventID:   l.EventID,
			URL:       l.URL,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		}
		if e, ok := f.events.events[l.EventID]; ok {
			view.EventTitle = e.Title
		}
		out = append(out, view)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
