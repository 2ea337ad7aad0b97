package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"storefront/api/internal/config"
	"storefront/api/internal/ids"
	"storefront/api/internal/mail"
	"storefront/api/internal/models"
	"storefront/api/internal/repository"
	"storefront/api/internal/security"
)

// AuthService orchestrates signup, signin, password reset and permission
// updates. Sessions are stateless: the signed token it returns is the only
// session artifact, and the caller attaches it to the response cookie.
type AuthService struct {
	users  UserStore
	mailer mail.Mailer
	cache  *redis.Client
	cfg    *config.AppConfig
	log    zerolog.Logger
}

func NewAuthService(users UserStore, mailer mail.Mailer, cache *redis.Client, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,
		cache:  cache,
		cfg:    cfg,
		log:    log,
	}
}

// AuthResult is returned by every operation that establishes a session.
type AuthResult struct {
	User  models.User
	Token string
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (s *AuthService) issueToken(userID string) (string, error) {
	return security.IssueSessionToken(s.cfg.Security.JWTSecret, userID, s.cfg.Security.SessionTTL)
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return AuthResult{}, ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Permissions:  []models.Permission{models.PermissionUser},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed up")

	return AuthResult{User: user, Token: token}, nil
}

type SigninInput struct {
	Email    string
	Password string
}

func (s *AuthService) Signin(ctx context.Context, input SigninInput) (AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrUserNotFound
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, err
	}
	if !ok {
		return AuthResult{}, ErrInvalidPassword
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, Token: token}, nil
}

// RequestReset issues a one-hour single-use reset token and mails a reset
// link. Repeat requests for the same address are throttled when a redis
// client is wired.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.throttleReset(ctx, email); err != nil {
		return err
	}

	token, expiry, err := security.NewResetToken(time.Now(), s.cfg.Security.ResetTokenTTL)
	if err != nil {
		return err
	}

	if err := s.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	subject, body := mail.ResetMessage(s.cfg.FrontendURL, token)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("reset mail failed")
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("reset token issued")
	return nil
}

func (s *AuthService) throttleReset(ctx context.Context, email string) error {
	if s.cache == nil || s.cfg.Security.ResetMailInterval <= 0 {
		return nil
	}

	ok, err := s.cache.SetNX(ctx, "pwreset:"+email, 1, s.cfg.Security.ResetMailInterval).Result()
	if err != nil {
		// The throttle is best effort; a cache outage must not block resets.
		s.log.Warn().Err(err).Msg("reset throttle unavailable")
		return nil
	}
	if !ok {
		return ErrResetThrottled
	}
	return nil
}

type ResetPasswordInput struct {
	ResetToken      string
	Password        string
	ConfirmPassword string
}

func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) (AuthResult, error) {
	if input.ResetToken == "" || input.Password == "" || input.ConfirmPassword == "" {
		return AuthResult{}, ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return AuthResult{}, ErrPasswordMismatch
	}

	user, err := s.users.FindByResetToken(ctx, input.ResetToken)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidResetToken
		}
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	// Password write and token clear are one statement, so the token cannot
	// be replayed.
	if err := s.users.UpdatePasswordAndClearReset(ctx, user.ID, passwordHash); err != nil {
		return AuthResult{}, err
	}

	user.PasswordHash = passwordHash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil

	token, err := s.issueToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset")

	return AuthResult{User: user, Token: token}, nil
}

// UpdatePermissions replaces the target user's permission set. The caller
// must hold ADMIN or PERMISSIONUPDATE.
func (s *AuthService) UpdatePermissions(ctx context.Context, viewer *models.User, targetID string, perms []models.Permission) (models.User, error) {
	if viewer == nil {
		return models.User{}, ErrNotAuthenticated
	}
	if !viewer.HasAnyPermission(models.PermissionAdmin, models.PermissionPermissionUpdate) {
		return models.User{}, ErrForbidden
	}

	for _, p := range perms {
		if !models.ValidPermission(p) {
			return models.User{}, fmt.Errorf("%w: %s", ErrInvalidPermission, p)
		}
	}

	if err := s.users.UpdatePermissions(ctx, targetID, perms); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}

	s.log.Info().
		Str("actor_id", viewer.ID).
		Str("user_id", targetID).
		Msg("permissions updated")

	return user, nil
}

// ListUsers is guarded like UpdatePermissions: it backs the admin screen
// that edits permissions.
func (s *AuthService) ListUsers(ctx context.Context, viewer *models.User) ([]models.User, error) {
	if viewer == nil {
		return nil, ErrNotAuthenticated
	}
	if !viewer.HasAnyPermission(models.PermissionAdmin, models.PermissionPermissionUpdate) {
		return nil, ErrForbidden
	}
	return s.users.List(ctx)
}
