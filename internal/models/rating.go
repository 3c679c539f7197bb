package models

import "time"

// Rating represents the ratings table. The (user_id, recipe_id) pair is the
// primary key so that a user holds at most one rating per recipe.
type Rating struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	RecipeID  uint      `gorm:"primaryKey;autoIncrement:false;index" json:"recipeId"`
	Value     int       `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Rating model
func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary is the aggregate rating of one recipe.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// UserRating is a rating joined with minimal recipe fields.
type UserRating struct {
	Rating
	Recipe RecipeSummary `gorm:"embedded;embeddedPrefix:r_" json:"recipe"`
}

// TopRatedRecipe is one row of the top rated ranking.
type TopRatedRecipe struct {
	RecipeID      uint          `json:"recipeId"`
	AverageRating float64       `json:"averageRating"`
	TotalVotes    int64         `json:"totalVotes"`
	Recipe        RecipeSummary `gorm:"embedded;embeddedPrefix:r_" json:"recipe"`
}
