package repository

import (
	"context"

	"recipe-sharing-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

const recipeSummaryColumns = "recipes.id AS r_id, recipes.title AS r_title, recipes.image_url AS r_image_url"

// UpsertRating inserts or updates the (user, recipe) rating in one statement.
// MySQL reports 1 affected row for an insert and 2 for an update, so
// created is true only for a fresh row.
func (r *RatingRepository) UpsertRating(ctx context.Context, rating *models.Rating) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// GetSummary returns the raw average and count of a recipe's ratings
func (r *RatingRepository) GetSummary(ctx context.Context, recipeID uint) (models.RatingSummary, error) {
	var summary models.RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(rating) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&summary).Error
	return summary, err
}

// GetRatingsByUser returns a user's ratings joined with minimal recipe fields
func (r *RatingRepository) GetRatingsByUser(ctx context.Context, userID uint) ([]models.UserRating, error) {
	var ratings []models.UserRating
	err := r.db.WithContext(ctx).Table("ratings").
		Select("ratings.*, " + recipeSummaryColumns).
		Joins("JOIN recipes ON recipes.id = ratings.recipe_id").
		Where("ratings.user_id = ?", userID).
		Order("ratings.updated_at DESC").
		Scan(&ratings).Error
	return ratings, err
}

// DeleteRating removes the user's rating for a recipe
func (r *RatingRepository) DeleteRating(ctx context.Context, userID, recipeID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTopRated groups ratings by recipe and ranks by mean, breaking ties on
// the lower recipe id.
func (r *RatingRepository) GetTopRated(ctx context.Context, limit int) ([]models.TopRatedRecipe, error) {
	var rows []models.TopRatedRecipe
	err := r.db.WithContext(ctx).Table("ratings").
		Select("ratings.recipe_id, AVG(ratings.rating) AS average_rating, COUNT(ratings.rating) AS total_votes, " + recipeSummaryColumns).
		Joins("JOIN recipes ON recipes.id = ratings.recipe_id").
		Group("ratings.recipe_id, recipes.id, recipes.title, recipes.image_url").
		Order("average_rating DESC, ratings.recipe_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
