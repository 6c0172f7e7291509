package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countingAccountStore records every call so tests can prove a handler
// rejected input before touching storage.
type countingAccountStore struct {
	lookups int
	creates int
}

func (s *countingAccountStore) CreateWithAccount(*model.Account, *model.User) error {
	s.creates++
	return nil
}

func (s *countingAccountStore) FindAccountByEmail(string) (*model.Account, error) {
	s.lookups++
	return nil, gorm.ErrRecordNotFound
}

func (s *countingAccountStore) FindAccountByID(uint) (*model.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *countingAccountStore) FindByID(uint) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *countingAccountStore) FindByAccountID(uint) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *countingAccountStore) UpdatePassword(uint, string) error { return nil }
func (s *countingAccountStore) TouchLastLogin(uint) error         { return nil }

// memorySessionStore satisfies both the auth service and the gate middleware.
type memorySessionStore struct {
	sessions map[string]*model.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*model.Session)}
}

func (s *memorySessionStore) Create(_ context.Context, sess *model.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return sess, nil
}

func (s *memorySessionStore) Touch(_ context.Context, id string, at time.Time) error {
	if sess, ok := s.sessions[id]; ok {
		sess.LastActivity = at
	}
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) DeleteByAccount(_ context.Context, accountID uint) error {
	for id, sess := range s.sessions {
		if sess.AccountID == accountID {
			delete(s.sessions, id)
		}
	}
	return nil
}

type noopResetStore struct{}

func (noopResetStore) Create(context.Context, string, uint) error { return nil }
func (noopResetStore) Consume(context.Context, string) (uint, error) {
	return 0, util.ErrResetTokenInvalid
}

type noopMailer struct{}

func (noopMailer) SendPasswordReset(string, string, string) error { return nil }

func controllerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-at-least-32-chars!!"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Session.IdleTimeout = 30 * time.Minute
	cfg.Session.AppBaseURL = "http://localhost:3000"
	return cfg
}

func newAuthTestRouter(accounts *countingAccountStore) (*gin.Engine, *memorySessionStore) {
	gin.SetMode(gin.TestMode)
	cfg := controllerConfig()
	sessions := newMemorySessionStore()

	svc := service.NewAuthService(accounts, sessions, noopResetStore{}, noopMailer{}, cfg)
	ctrl := NewAuthController(svc, sessions, cfg)

	router := gin.New()
	router.POST("/api/auth/signup", ctrl.Signup)
	router.POST("/api/auth/set-session", ctrl.SetSession)
	return router, sessions
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupMissingFields(t *testing.T) {
	accounts := &countingAccountStore{}
	router, _ := newAuthTestRouter(accounts)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"missing email", gin.H{"first_name": "Ada", "last_name": "Lovelace", "password": "longenough"}},
		{"missing password", gin.H{"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"}},
		{"missing first name", gin.H{"last_name": "Lovelace", "email": "ada@example.com", "password": "longenough"}},
		{"short password", gin.H{"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com", "password": "short"}},
		{"bad email", gin.H{"first_name": "Ada", "last_name": "Lovelace", "email": "not-an-email", "password": "longenough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Validation failures never reach storage.
	assert.Zero(t, accounts.lookups)
	assert.Zero(t, accounts.creates)
}

func TestSignupValid(t *testing.T) {
	accounts := &countingAccountStore{}
	router, _ := newAuthTestRouter(accounts)

	w := postJSON(t, router, "/api/auth/signup", gin.H{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "longenough",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, accounts.creates)
}

func TestSetSessionMissingToken(t *testing.T) {
	router, sessions := newAuthTestRouter(&countingAccountStore{})

	w := postJSON(t, router, "/api/auth/set-session", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sessions.sessions)
}

func TestSetSessionInvalidToken(t *testing.T) {
	router, sessions := newAuthTestRouter(&countingAccountStore{})

	w := postJSON(t, router, "/api/auth/set-session", gin.H{"access_token": "garbage"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sessions.sessions)
}
