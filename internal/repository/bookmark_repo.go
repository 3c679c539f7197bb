package repository

import (
	"context"

	"recipe-sharing-backend/internal/models"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// CreateBookmark inserts a bookmark; the composite primary key rejects duplicates
func (r *BookmarkRepository) CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error {
	return translate(r.db.WithContext(ctx).Create(bookmark).Error)
}

// DeleteBookmark removes a user's bookmark of a recipe
func (r *BookmarkRepository) DeleteBookmark(ctx context.Context, userID, recipeID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetBookmarksByUser lists a user's bookmarks, newest first, each with the
// recipe's ingredients and instructions
func (r *BookmarkRepository) GetBookmarksByUser(ctx context.Context, userID uint) ([]models.BookmarkWithRecipe, error) {
	var bookmarks []models.BookmarkWithRecipe
	err := r.db.WithContext(ctx).Table("bookmarks").
		Select("bookmarks.*, "+recipeSummaryColumns).
		Joins("JOIN recipes ON recipes.id = bookmarks.recipe_id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Scan(&bookmarks).Error
	if err != nil || len(bookmarks) == 0 {
		return bookmarks, err
	}

	ids := make([]uint, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.RecipeID
	}
	ingredients, instructions, err := loadChildren(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range bookmarks {
		bookmarks[i].Recipe.Ingredients = ingredients[bookmarks[i].RecipeID]
		bookmarks[i].Recipe.Instructions = instructions[bookmarks[i].RecipeID]
	}
	return bookmarks, nil
}
