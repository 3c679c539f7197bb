package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// EditProfile changes the caller's display name. Admin accounts are managed
// outside the API.
func (s *UserService) EditProfile(ctx context.Context, actorID uint, actorRole, name string) (*models.PublicUser, error) {
	if actorRole != models.RoleUser {
		return nil, forbidden("Only users can edit their profile")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("name is required")
	}

	// MySQL reports zero affected rows when the name is unchanged, so a
	// missing user is detected by the read below.
	if err := s.userRepo.UpdateName(ctx, actorID, name); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	public := user.Public()
	return &public, nil
}
