package models

import "time"

// Comment represents the comments table. ParentID is nil for top-level
// comments; a reply always points at a top-level comment.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipeId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"size:300;not null" json:"content"`
	ParentID  *uint     `gorm:"index" json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor includes the author's name and, for top-level comments,
// the direct replies.
type CommentWithAuthor struct {
	Comment
	AuthorName string              `json:"authorName"`
	Replies    []CommentWithAuthor `gorm:"-" json:"replies,omitempty"`
}
