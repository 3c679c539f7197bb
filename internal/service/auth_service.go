package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
	"recipe-sharing-backend/pkg/utils"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	userRepo  UserStore
	auditRepo AuditStore
	tokens    *utils.TokenManager
}

func NewAuthService(userRepo UserStore, auditRepo AuditStore, tokens *utils.TokenManager) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		tokens:    tokens,
	}
}

// LoginResult carries both tokens and the user record with the new refresh
// token filled in.
type LoginResult struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"-"`
	User         models.PublicUser `json:"user"`
}

// Register creates a new user account with role "user"
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, invalidInput("name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalidInput("email must be a valid email")
	}
	if len(password) < minPasswordLength {
		return nil, invalidInput("password must be at least %d characters long", minPasswordLength)
	}

	// Check if email already exists
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, conflict("Email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent register for the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit(ctx, &user.ID, "user_registration", fmt.Sprintf("User %s registered", user.Email))

	public := user.Public()
	return &public, nil
}

// Login verifies credentials, issues a token pair and replaces any previously
// stored refresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, invalidInput("email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, unauthorized("Invalid credentials")
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	s.audit(ctx, &user.ID, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	public := user.Public()
	public.RefreshToken = &refreshToken
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         public,
	}, nil
}

// Logout clears the stored refresh token if some user currently holds it
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return unauthorized("No refresh token provided")
	}

	user, err := s.userRepo.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if err := s.userRepo.ClearRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized("Invalid refresh token")
		}
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	if user != nil {
		s.audit(ctx, &user.ID, "user_logout", fmt.Sprintf("User %s logged out", user.Email))
	}
	return nil
}

// Refresh mints a new access token for the holder of a stored refresh token.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", unauthorized("No refresh token provided")
	}

	user, err := s.userRepo.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", unauthorized("Invalid refresh token")
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil || claims.UserID != user.ID {
		return "", forbidden("Refresh token expired or invalid")
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *AuthService) audit(ctx context.Context, userID *uint, action, details string) {
	if s.auditRepo == nil {
		return
	}
	if err := s.auditRepo.CreateAuditLog(ctx, userID, action, details); err != nil {
		slog.WarnContext(ctx, "failed to write audit log", "action", action, "error", err)
	}
}
