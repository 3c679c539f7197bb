package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

const (
	minRating        = 1
	maxRating        = 5
	defaultTopRated  = 5
	maxTopRatedLimit = 100
)

type RatingService struct {
	ratingRepo RatingStore
	recipeRepo RecipeLookup
}

func NewRatingService(ratingRepo RatingStore, recipeRepo RecipeLookup) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		recipeRepo: recipeRepo,
	}
}

// Rate stores the user's rating for a recipe, replacing an earlier one.
// created reports whether a new row was inserted.
func (s *RatingService) Rate(ctx context.Context, recipeID, userID uint, value int) (rating *models.Rating, created bool, err error) {
	if value < minRating || value > maxRating {
		return nil, false, invalidInput("Rating must be between %d and %d", minRating, maxRating)
	}

	exists, err := s.recipeRepo.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, false, notFound("Recipe not found")
	}

	rating = &models.Rating{
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
	}
	created, err = s.ratingRepo.UpsertRating(ctx, rating)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save rating: %w", err)
	}
	return rating, created, nil
}

// Average returns the mean rating rounded to two decimals and the vote count
func (s *RatingService) Average(ctx context.Context, recipeID uint) (models.RatingSummary, error) {
	summary, err := s.ratingRepo.GetSummary(ctx, recipeID)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to get rating summary: %w", err)
	}
	if summary.Count == 0 {
		return models.RatingSummary{}, nil
	}
	summary.Average = round2(summary.Average)
	return summary, nil
}

func (s *RatingService) ListForUser(ctx context.Context, userID uint) ([]models.UserRating, error) {
	ratings, err := s.ratingRepo.GetRatingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	if ratings == nil {
		ratings = []models.UserRating{}
	}
	return ratings, nil
}

func (s *RatingService) Remove(ctx context.Context, recipeID, userID uint) error {
	if err := s.ratingRepo.DeleteRating(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Rating not found")
		}
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

// TopRated ranks recipes by mean rating, highest first, ties broken by
// recipe id ascending. A non-positive limit means the default of 5.
func (s *RatingService) TopRated(ctx context.Context, limit int) ([]models.TopRatedRecipe, error) {
	if limit < 1 {
		limit = defaultTopRated
	}
	if limit > maxTopRatedLimit {
		limit = maxTopRatedLimit
	}

	top, err := s.ratingRepo.GetTopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated recipes: %w", err)
	}
	for i := range top {
		top[i].AverageRating = round2(top[i].AverageRating)
	}
	if top == nil {
		top = []models.TopRatedRecipe{}
	}
	return top, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
