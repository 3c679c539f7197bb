package models

import "time"

// Recipe represents the recipes table
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:255;not null" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:512;not null" json:"imageUrl"`
	Time        string    `gorm:"size:100;not null" json:"time"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Ingredients  []Ingredient  `gorm:"-" json:"ingredients,omitempty"`
	Instructions []Instruction `gorm:"-" json:"instructions,omitempty"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient represents the ingredients table
type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipeId"`
	Name     string `gorm:"size:255;not null" json:"name" binding:"required"`
	Quantity string `gorm:"size:100;not null" json:"quantity" binding:"required"`
	Unit     string `gorm:"size:100;not null" json:"unit" binding:"required"`
}

// TableName specifies the table name for Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// Instruction represents the instructions table. Step is the display order.
type Instruction struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RecipeID    uint   `gorm:"not null;index" json:"recipeId"`
	Step        int    `gorm:"column:step_order;not null" json:"order" binding:"required,min=1"`
	Description string `gorm:"size:1000;not null" json:"description" binding:"required"`
}

// TableName specifies the table name for Instruction model
func (Instruction) TableName() string {
	return "instructions"
}

// RecipeSummary is the minimal recipe projection joined into ratings and
// bookmarks. Bookmark listings also fill the children.
type RecipeSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`

	Ingredients  []Ingredient  `gorm:"-" json:"ingredients,omitempty"`
	Instructions []Instruction `gorm:"-" json:"instructions,omitempty"`
}
