package service

import (
	"context"
	"errors"
	"fmt"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

type BookmarkService struct {
	bookmarkRepo BookmarkStore
	recipeRepo   RecipeLookup
}

func NewBookmarkService(bookmarkRepo BookmarkStore, recipeRepo RecipeLookup) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		recipeRepo:   recipeRepo,
	}
}

func (s *BookmarkService) Add(ctx context.Context, userID, recipeID uint) (*models.Bookmark, error) {
	exists, err := s.recipeRepo.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, notFound("Recipe not found")
	}

	bookmark := &models.Bookmark{UserID: userID, RecipeID: recipeID}
	if err := s.bookmarkRepo.CreateBookmark(ctx, bookmark); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Recipe already bookmarked")
		}
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}
	return bookmark, nil
}

func (s *BookmarkService) Remove(ctx context.Context, userID, recipeID uint) error {
	if err := s.bookmarkRepo.DeleteBookmark(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Bookmark not found")
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// ListMine returns the user's bookmarks, newest first
func (s *BookmarkService) ListMine(ctx context.Context, userID uint) ([]models.BookmarkWithRecipe, error) {
	bookmarks, err := s.bookmarkRepo.GetBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []models.BookmarkWithRecipe{}
	}
	return bookmarks, nil
}
