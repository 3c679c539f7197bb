package service

import (
	"context"

	"recipe-sharing-backend/internal/models"
)

// UserStore is the credential store used by the auth and profile services.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByRefreshToken(ctx context.Context, token string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SetRefreshToken(ctx context.Context, userID uint, token string) error
	ClearRefreshToken(ctx context.Context, token string) error
	UpdateName(ctx context.Context, userID uint, name string) error
}

// RecipeStore persists recipes with their ingredients and instructions.
type RecipeStore interface {
	GetAllRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetRecipeWithChildren(ctx context.Context, id uint) (*models.Recipe, error)
	RecipeExists(ctx context.Context, id uint) (bool, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error
	UpdateRecipe(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteRecipe(ctx context.Context, id uint) error
}

// RecipeLookup is the part of RecipeStore the other services need.
type RecipeLookup interface {
	RecipeExists(ctx context.Context, id uint) (bool, error)
}

type CommentStore interface {
	GetCommentByID(ctx context.Context, id uint) (*models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id uint) error
	CountTopLevel(ctx context.Context, recipeID uint) (int64, error)
	GetTopLevelPage(ctx context.Context, recipeID uint, limit, offset int) ([]models.CommentWithAuthor, error)
}

type RatingStore interface {
	UpsertRating(ctx context.Context, rating *models.Rating) (bool, error)
	GetSummary(ctx context.Context, recipeID uint) (models.RatingSummary, error)
	GetRatingsByUser(ctx context.Context, userID uint) ([]models.UserRating, error)
	DeleteRating(ctx context.Context, userID, recipeID uint) error
	GetTopRated(ctx context.Context, limit int) ([]models.TopRatedRecipe, error)
}

type BookmarkStore interface {
	CreateBookmark(ctx context.Context, bookmark *models.Bookmark) error
	DeleteBookmark(ctx context.Context, userID, recipeID uint) error
	GetBookmarksByUser(ctx context.Context, userID uint) ([]models.BookmarkWithRecipe, error)
}

// AuditStore records security-relevant actions.
type AuditStore interface {
	CreateAuditLog(ctx context.Context, userID *uint, action string, details string) error
}

// ImageStore uploads an image and returns its public URL.
type ImageStore interface {
	StoreImage(ctx context.Context, data []byte, contentType string) (string, error)
}
