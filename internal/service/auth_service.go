package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"
	"pattern_edu_backend/pkg/mailer"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountStore is the slice of the user repository the auth flow needs.
type AccountStore interface {
	CreateWithAccount(account *model.Account, user *model.User) error
	FindAccountByEmail(email string) (*model.Account, error)
	FindAccountByID(id uint) (*model.Account, error)
	FindByID(id uint) (*model.User, error)
	FindByAccountID(accountID uint) (*model.User, error)
	UpdatePassword(accountID uint, passwordHash string) error
	TouchLastLogin(accountID uint) error
}

type SessionStore interface {
	Create(ctx context.Context, sess *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByAccount(ctx context.Context, accountID uint) error
}

type ResetTokenStore interface {
	Create(ctx context.Context, token string, accountID uint) error
	Consume(ctx context.Context, token string) (uint, error)
}

type AuthService struct {
	Accounts AccountStore
	Sessions SessionStore
	Resets   ResetTokenStore
	Mailer   mailer.Mailer
	Cfg      *config.Config
}

func NewAuthService(accounts AccountStore, sessions SessionStore, resets ResetTokenStore, m mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		Accounts: accounts,
		Sessions: sessions,
		Resets:   resets,
		Mailer:   m,
		Cfg:      cfg,
	}
}

// SignUp creates the auth identity and the profile row atomically. New
// accounts always get the student role; educators are promoted out of band.
func (s *AuthService) SignUp(firstName, lastName, email, password string) (*model.User, error) {
	_, err := s.Accounts.FindAccountByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		AuthID:       uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	user := &model.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      model.Student,
	}

	if err := s.Accounts.CreateWithAccount(account, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials, opens a session record, and returns a signed
// access token bound to that session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	account, err := s.Accounts.FindAccountByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}
	if account.Disabled {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	user, err := s.Accounts.FindByAccountID(account.ID)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	sess := &model.Session{
		ID:           uuid.New().String(),
		AccountID:    account.ID,
		UserID:       user.ID,
		Role:         user.Role,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, sess.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	s.Accounts.TouchLastLogin(account.ID)

	return token, user, nil
}

// SetSession validates a presented access token and re-establishes its
// server-side session record. An invalid or expired token is a validation
// failure, not an auth failure: the caller is trying to bootstrap a session,
// not use one.
func (s *AuthService) SetSession(ctx context.Context, accessToken string) (*model.Session, error) {
	claims, err := util.ParseJWT(accessToken, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, util.Wrap(util.KindValidation, "invalid or expired access token", err)
	}

	user, err := s.Accounts.FindByID(claims.UserID)
	if err != nil {
		return nil, util.Wrap(util.KindValidation, "unknown user in access token", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:           claims.SessionID,
		AccountID:    user.AccountID,
		UserID:       user.ID,
		Role:         user.Role,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// ForceLogout invalidates every session the target user holds.
func (s *AuthService) ForceLogout(ctx context.Context, userID uint) error {
	user, err := s.Accounts.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.E(util.KindNotFound, "user not found")
		}
		return err
	}
	return s.Sessions.DeleteByAccount(ctx, user.AccountID)
}

// ForgotPassword emails a single-use reset link. An unknown email is not an
// error; the response never reveals whether an account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.Accounts.FindAccountByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := uuid.New().String()
	if err := s.Resets.Create(ctx, token, account.ID); err != nil {
		return err
	}

	name := ""
	if user, err := s.Accounts.FindByAccountID(account.ID); err == nil {
		name = user.FirstName
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.Cfg.Session.AppBaseURL, token)
	return s.Mailer.SendPasswordReset(account.Email, name, link)
}

// ResetPassword consumes the token, rewrites the credential, and invalidates
// every open session for the account.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	accountID, err := s.Resets.Consume(ctx, token)
	if err != nil {
		return util.ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.Accounts.UpdatePassword(accountID, string(hash)); err != nil {
		return err
	}
	return s.Sessions.DeleteByAccount(ctx, accountID)
}

func (s *AuthService) GetCurrentUser(claims *util.Claims) (*model.User, error) {
	if claims == nil {
		return nil, util.E(util.KindUnauthorized, "not authenticated")
	}
	user, err := s.Accounts.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.E(util.KindUnauthorized, "unknown user")
		}
		return nil, err
	}
	return user, nil
}

// RoleHome is where an authenticated user lands after visiting an auth page.
func (s *AuthService) RoleHome(role model.UserRole) string {
	if role == model.Educator {
		return s.Cfg.Session.AppBaseURL + "/educator/dashboard"
	}
	return s.Cfg.Session.AppBaseURL + "/home"
}
