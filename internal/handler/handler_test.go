package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/config"
	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/internal/service"
	"github.com/webway/campus-events-backend/pkg/email"
	"github.com/webway/campus-events-backend/pkg/token"
	"github.com/webway/campus-events-backend/pkg/utils"
)

// Minimal in-memory stores backing the real services for route tests.

type memUserStore struct {
	users  map[uint]models.User
	nextID uint
}

func (m *memUserStore) Create(u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) GetByID(id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *memUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserStore) EmailExists(email string) (bool, error) {
	_, err := m.GetByEmail(email)
	return err == nil, nil
}

func (m *memUserStore) Update(u *models.User) error {
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) UpdatePassword(id uint, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hash
	m.users[id] = u
	return nil
}

func (m *memUserStore) Delete(id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memEventStore struct {
	events map[uint]models.Event
	nextID uint
}

func (m *memEventStore) Create(e *models.Event) error {
	e.ID = m.nextID
	m.nextID++
	m.events[e.ID] = *e
	return nil
}

func (m *memEventStore) GetByID(id uint) (*models.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (m *memEventStore) GetAll(category string) ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memEventStore) Update(e *models.Event) error {
	m.events[e.ID] = *e
	return nil
}

func (m *memEventStore) Delete(id uint) error {
	if _, ok := m.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.events, id)
	return nil
}

type memLinkStore struct {
	links  map[uint]models.RegistrationLink
	events *memEventStore
	nextID uint
}

func (m *memLinkStore) Create(l *models.RegistrationLink) error {
	for _, existing := range m.links {
		if existing.EventID == l.EventID {
			return gorm.ErrDuplicatedKey
		}
	}
	l.ID = m.nextID
	m.nextID++
	m.links[l.ID] = *l
	return nil
}

func (m *memLinkStore) GetByID(id uint) (*models.RegistrationLink, error) {
	l, ok := m.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (m *memLinkStore) GetByEventID(eventID uint) (*models.RegistrationLink, error) {
	for _, l := range m.links {
		if l.EventID == eventID {
			l := l
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLinkStore) Update(l *models.RegistrationLink) error {
	m.links[l.ID] = *l
	return nil
}

func (m *memLinkStore) Delete(id uint) error {
	if _, ok := m.links[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.links, id)
	return nil
}

func (m *memLinkStore) DeleteByEventID(eventID uint) error {
	for id, l := range m.links {
		if l.EventID == eventID {
			delete(m.links, id)
		}
	}
	return nil
}

func (m *memLinkStore) ListWithEventTitle() ([]models.RegistrationLinkView, error) {
	out := make([]models.RegistrationLinkView, 0, len(m.links))
	for _, l := range m.links {
		view := models.RegistrationLinkView{ID: l.ID, EventID: l.EventID, URL: l.URL}
		if e, ok := m.events.events[l.EventID]; ok {
			view.EventTitle = e.Title
		}
		out = append(out, view)
	}
	return out, nil
}

// testApp mounts the public and admin routes without the auth middleware;
// access control has its own tests in the middleware package.
func testApp(t *testing.T) *fiber.App {
	t.Helper()

	userStore := &memUserStore{users: make(map[uint]models.User), nextID: 1}
	eventStore := &memEventStore{events: make(map[uint]models.Event), nextID: 1}
	linkStore := &memLinkStore{links: make(map[uint]models.RegistrationLink), events: eventStore, nextID: 1}

	tokens := token.NewService("test-secret", "test", time.Hour)
	mailer := email.NewService(config.EmailConfig{}, zap.NewNop())
	validator := utils.NewValidator()

	authService := service.NewAuthService(userStore, tokens, mailer, "cumminscollege.edu.in", zap.NewNop())
	eventService := service.NewEventService(eventStore, linkStore, zap.NewNop())
	linkService := service.NewRegistrationLinkService(linkStore, eventStore)

	authHandler := NewAuthHandler(authService, validator)
	eventHandler := NewEventHandler(eventService, validator)
	linkHandler := NewRegistrationLinkHandler(linkService, validator)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/events", eventHandler.ListEvents)
	api.Get("/events/:id", eventHandler.GetEvent)
	api.Post("/events", eventHandler.CreateEvent)
	api.Put("/events/:id", eventHandler.UpdateEvent)
	api.Delete("/events/:id", eventHandler.DeleteEvent)
	api.Get("/registration-links", linkHandler.ListLinks)
	api.Post("/registration-links", linkHandler.UpsertLink)
	api.Delete("/registration-links/:id", linkHandler.DeleteLink)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, models.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope models.Response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}

	return resp, envelope
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"fullname": "Asha Kulkarni",
		"email":    "asha@cumminscollege.edu.in",
		"password": "secret1",
		"role":     "student",
		"year":     "SE",
		"branch":   "Computer",
	}
}

func eventBody(title, category string) map[string]interface{} {
	return map[string]interface{}{
		"title":            title,
		"category":         category,
		"date":             "2026-09-01T10:00:00Z",
		"location":         "Auditorium",
		"description":      "short",
		"full_description": "long",
	}
}

func TestRegisterRoute(t *testing.T) {
	app := testApp(t)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/register", registerBody())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Success)

	// Same email again, different case.
	body := registerBody()
	body["email"] = "ASHA@cumminscollege.edu.in"
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/register", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, "user already exists", envelope.Error)
}

func TestRegisterRouteRejectsOutsideDomain(t *testing.T) {
	app := testApp(t)

	body := registerBody()
	body["email"] = "asha@gmail.com"
	resp, _ := doJSON(t, app, http.MethodPost, "/api/register", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRouteFailures(t *testing.T) {
	app := testApp(t)
	doJSON(t, app, http.MethodPost, "/api/register", registerBody())

	wrongPassword := map[string]interface{}{"email": "asha@cumminscollege.edu.in", "password": "nope123"}
	unknownEmail := map[string]interface{}{"email": "ghost@cumminscollege.edu.in", "password": "secret1"}

	respA, envA := doJSON(t, app, http.MethodPost, "/api/login", wrongPassword)
	respB, envB := doJSON(t, app, http.MethodPost, "/api/login", unknownEmail)

	// Indistinguishable: same status, same message.
	assert.Equal(t, http.StatusBadRequest, respA.StatusCode)
	assert.Equal(t, respA.StatusCode, respB.StatusCode)
	assert.Equal(t, envA.Error, envB.Error)
}

func TestEventRoutes(t *testing.T) {
	app := testApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/events", eventBody("Hackathon", "Tech"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	doJSON(t, app, http.MethodPost, "/api/events", eventBody("Dance Night", "Cultural"))

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/events?category=Tech", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	events, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 1)

	resp, envelope = doJSON(t, app, http.MethodGet, "/api/events?category=all", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	events, ok = envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 2)
}

func TestEventRouteValidation(t *testing.T) {
	app := testApp(t)

	body := eventBody("Hackathon", "Tech")
	delete(body, "location")

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/events", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
}

func TestEventRouteNotFound(t *testing.T) {
	app := testApp(t)

	for _, path := range []string{"/api/events/99", "/api/events/not-a-number"} {
		resp, _ := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestRegistrationLinkRoutes(t *testing.T) {
	app := testApp(t)
	doJSON(t, app, http.MethodPost, "/api/events", eventBody("Hackathon", "Tech"))

	upsert := map[string]interface{}{"eventId": 1, "url": "https://forms.example.com/a"}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/registration-links", upsert)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	upsert["url"] = "https://forms.example.com/b"
	resp, _ = doJSON(t, app, http.MethodPost, "/api/registration-links", upsert)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/registration-links", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	links, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, links, 1)

	link, ok := links[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://forms.example.com/b", link["url"])
	assert.Equal(t, "Hackathon", link["event_title"])
}

func TestRegistrationLinkUnknownEvent(t *testing.T) {
	app := testApp(t)

	upsert := map[string]interface{}{"eventId": 42, "url": "https://forms.example.com/a"}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/registration-links", upsert)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegistrationLinkDeleteNotFound(t *testing.T) {
	app := testApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/registration-links/7", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
