package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAccountStore struct {
	accounts map[string]*model.Account // keyed by email
	users    map[uint]*model.User      // keyed by user id

	createCalls    int
	passwordWrites map[uint]string
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		accounts:       make(map[string]*model.Account),
		users:          make(map[uint]*model.User),
		passwordWrites: make(map[uint]string),
	}
}

func (s *fakeAccountStore) seed(email, password string, role model.UserRole) (*model.Account, *model.User) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account := &model.Account{Email: email, PasswordHash: string(hash), AuthID: "auth-" + email}
	account.ID = uint(len(s.accounts) + 1)
	s.accounts[email] = account

	user := &model.User{AccountID: account.ID, AuthID: account.AuthID, Email: email, Role: role}
	user.ID = account.ID + 100
	s.users[user.ID] = user
	return account, user
}

func (s *fakeAccountStore) CreateWithAccount(account *model.Account, user *model.User) error {
	s.createCalls++
	account.ID = uint(len(s.accounts) + 1)
	user.ID = account.ID + 100
	user.AccountID = account.ID
	user.AuthID = account.AuthID
	s.accounts[account.Email] = account
	s.users[user.ID] = user
	return nil
}

func (s *fakeAccountStore) FindAccountByEmail(email string) (*model.Account, error) {
	account, ok := s.accounts[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (s *fakeAccountStore) FindAccountByID(id uint) (*model.Account, error) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAccountStore) FindByID(id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *fakeAccountStore) FindByAccountID(accountID uint) (*model.User, error) {
	for _, u := range s.users {
		if u.AccountID == accountID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAccountStore) UpdatePassword(accountID uint, passwordHash string) error {
	s.passwordWrites[accountID] = passwordHash
	return nil
}

func (s *fakeAccountStore) TouchLastLogin(uint) error { return nil }

type fakeAuthSessionStore struct {
	created          []*model.Session
	deleted          []string
	deletedByAccount []uint
}

func (s *fakeAuthSessionStore) Create(_ context.Context, sess *model.Session) error {
	s.created = append(s.created, sess)
	return nil
}

func (s *fakeAuthSessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	for _, sess := range s.created {
		if sess.ID == id {
			return sess, nil
		}
	}
	return nil, util.ErrSessionNotFound
}

func (s *fakeAuthSessionStore) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeAuthSessionStore) DeleteByAccount(_ context.Context, accountID uint) error {
	s.deletedByAccount = append(s.deletedByAccount, accountID)
	return nil
}

type fakeResetTokenStore struct {
	tokens map[string]uint
}

func (s *fakeResetTokenStore) Create(_ context.Context, token string, accountID uint) error {
	if s.tokens == nil {
		s.tokens = make(map[string]uint)
	}
	s.tokens[token] = accountID
	return nil
}

func (s *fakeResetTokenStore) Consume(_ context.Context, token string) (uint, error) {
	accountID, ok := s.tokens[token]
	if !ok {
		return 0, util.ErrResetTokenInvalid
	}
	delete(s.tokens, token)
	return accountID, nil
}

type fakeMailer struct {
	sentTo []string
	links  []string
}

func (m *fakeMailer) SendPasswordReset(toEmail, _, resetLink string) error {
	m.sentTo = append(m.sentTo, toEmail)
	m.links = append(m.links, resetLink)
	return nil
}

func authServiceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-at-least-32-chars!!"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Session.IdleTimeout = 30 * time.Minute
	cfg.Session.AppBaseURL = "http://localhost:3000"
	return cfg
}

func newAuthFixture() (*AuthService, *fakeAccountStore, *fakeAuthSessionStore, *fakeResetTokenStore, *fakeMailer) {
	accounts := newFakeAccountStore()
	sessions := &fakeAuthSessionStore{}
	resets := &fakeResetTokenStore{}
	mail := &fakeMailer{}
	svc := NewAuthService(accounts, sessions, resets, mail, authServiceConfig())
	return svc, accounts, sessions, resets, mail
}

func TestSignUp(t *testing.T) {
	svc, accounts, _, _, _ := newAuthFixture()

	user, err := svc.SignUp("Ada", "Lovelace", "ada@example.com", "correct horse battery")
	require.NoError(t, err)

	assert.Equal(t, model.Student, user.Role)
	assert.NotZero(t, user.AccountID)
	assert.NotEmpty(t, user.AuthID)
	assert.Equal(t, 1, accounts.createCalls)

	account := accounts.accounts["ada@example.com"]
	require.NotNil(t, account)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("correct horse battery")))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, accounts, _, _, _ := newAuthFixture()
	accounts.seed("ada@example.com", "pw", model.Student)

	_, err := svc.SignUp("Ada", "Lovelace", "ada@example.com", "another password")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
	assert.Zero(t, accounts.createCalls)
}

func TestLogin(t *testing.T) {
	svc, accounts, sessions, _, _ := newAuthFixture()
	_, user := accounts.seed("ada@example.com", "hunter22", model.Student)

	token, got, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.Len(t, sessions.created, 1)

	// The token is bound to the session that was just created.
	claims, err := util.ParseJWT(token, authServiceConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, sessions.created[0].ID, claims.SessionID)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, accounts, sessions, _, _ := newAuthFixture()
	accounts.seed("ada@example.com", "hunter22", model.Student)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	assert.Empty(t, sessions.created)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, accounts, _, _, _ := newAuthFixture()
	account, _ := accounts.seed("ada@example.com", "hunter22", model.Student)
	account.Disabled = true

	_, _, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestSetSessionValidToken(t *testing.T) {
	svc, accounts, sessions, _, _ := newAuthFixture()
	_, user := accounts.seed("ada@example.com", "hunter22", model.Student)

	token, err := util.GenerateJWT(user, "sess-abc", authServiceConfig().JWT.Secret, time.Hour)
	require.NoError(t, err)

	sess, err := svc.SetSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", sess.ID)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Len(t, sessions.created, 1)
}

func TestSetSessionInvalidToken(t *testing.T) {
	svc, _, sessions, _, _ := newAuthFixture()

	_, err := svc.SetSession(context.Background(), "garbage-token")
	assert.Equal(t, util.KindValidation, util.KindOf(err))
	assert.Empty(t, sessions.created)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, _, _, mail := newAuthFixture()

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.sentTo)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, accounts, sessions, resets, mail := newAuthFixture()
	account, _ := accounts.seed("ada@example.com", "old password", model.Student)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	require.Len(t, mail.sentTo, 1)
	assert.Contains(t, mail.links[0], "/reset-password?token=")

	// Pull the token out of the emailed link.
	link := mail.links[0]
	token := link[strings.Index(link, "token=")+len("token="):]

	require.NoError(t, svc.ResetPassword(context.Background(), token, "new password"))
	assert.Contains(t, accounts.passwordWrites, account.ID)
	assert.Equal(t, []uint{account.ID}, sessions.deletedByAccount)

	// Single use: the same token cannot be consumed twice.
	err := svc.ResetPassword(context.Background(), token, "yet another")
	assert.ErrorIs(t, err, util.ErrResetTokenInvalid)
	assert.Empty(t, resets.tokens)
}

func TestForceLogout(t *testing.T) {
	svc, accounts, sessions, _, _ := newAuthFixture()
	account, user := accounts.seed("ada@example.com", "pw", model.Student)

	require.NoError(t, svc.ForceLogout(context.Background(), user.ID))
	assert.Equal(t, []uint{account.ID}, sessions.deletedByAccount)
}

func TestForceLogoutUnknownUser(t *testing.T) {
	svc, _, sessions, _, _ := newAuthFixture()

	err := svc.ForceLogout(context.Background(), 999)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
	assert.Empty(t, sessions.deletedByAccount)
}

func TestRoleHome(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	assert.Equal(t, "http://localhost:3000/home", svc.RoleHome(model.Student))
	assert.Equal(t, "http://localhost:3000/educator/dashboard", svc.RoleHome(model.Educator))
}
