package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Harshvardhan1407/user-auth-service/internal/models"
	"github.com/Harshvardhan1407/user-auth-service/internal/repository"
)

var (
	// ErrInvalidCredentials covers unknown usernames, wrong passwords and
	// bad or expired tokens alike, so responses never reveal which one
	// happened.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned by update/delete when no row matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when account creation hits a taken username.
	ErrUserExists = errors.New("username already taken")
)

// LoginResponse is the payload returned after successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ProfileResponse is the payload returned by WhoAmI.
type ProfileResponse struct {
	Username   string `json:"username"`
	LoginCount int64  `json:"login_count"`
}

// AuthService orchestrates credential verification, token issuance and
// account management.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	WhoAmI(ctx context.Context, token string) (*ProfileResponse, error)
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
	DeleteUser(ctx context.Context, username string) error
	ValidateToken(ctx context.Context, token string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	hasher     PasswordHasher
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, hasher PasswordHasher, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger,
	}
}

// Login verifies the credential pair and mints a bearer token. A missing
// user and a wrong password produce the same failure, and neither mutates
// the store.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.jwtService.GetExpiry().Seconds()),
	}, nil
}

// WhoAmI validates the token, re-resolves the subject against the store and
// returns the profile. The login counter increment is best effort: its
// failure is logged and never surfaced to the caller.
func (s *authService) WhoAmI(ctx context.Context, token string) (*ProfileResponse, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.logTokenRejection(err)
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Subject was deleted after the token was minted; indistinguishable
			// from any other bad token.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("whoami lookup: %w", err)
	}

	profile := &ProfileResponse{
		Username:   user.Username,
		LoginCount: user.LoginCount,
	}

	if err := s.userRepo.IncrementLoginCount(ctx, user.Username); err != nil {
		s.logger.Warn().Err(err).Str("username", user.Username).Msg("failed to increment login count")
	} else {
		profile.LoginCount++
	}

	return profile, nil
}

// CreateUser hashes the password and persists a new account.
func (s *authService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// UpdatePassword re-hashes and persists a new password for an existing user.
func (s *authService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, username, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// DeleteUser removes the account row.
func (s *authService) DeleteUser(ctx context.Context, username string) error {
	if err := s.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ValidateToken verifies the token and re-checks that its subject still
// exists, returning the username for protected operations.
func (s *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.logTokenRejection(err)
		return "", ErrInvalidCredentials
	}

	if _, err := s.userRepo.FindByUsername(ctx, claims.Subject); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("token subject lookup: %w", err)
	}

	return claims.Subject, nil
}

func (s *authService) logTokenRejection(err error) {
	reason := "invalid"
	if errors.Is(err, ErrTokenExpired) {
		reason = "expired"
	}
	s.logger.Debug().Str("reason", reason).Msg("token rejected")
}
