package models

import "time"

// Bookmark represents the bookmarks table
type Bookmark struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	RecipeID  uint      `gorm:"primaryKey;autoIncrement:false;index" json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for Bookmark model
func (Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkWithRecipe is a bookmark joined with the bookmarked recipe.
type BookmarkWithRecipe struct {
	Bookmark
	Recipe RecipeSummary `gorm:"embedded;embeddedPrefix:r_" json:"recipe"`
}
