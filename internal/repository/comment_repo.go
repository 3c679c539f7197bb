package repository

import (
	"context"

	"recipe-sharing-backend/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentWithAuthorColumns = "comments.*, users.name AS author_name"

// GetCommentByID finds a comment by primary key
func (r *CommentRepository) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// CreateComment creates a new comment or reply
func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// DeleteComment removes a comment together with its direct replies
func (r *CommentRepository) DeleteComment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Comment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountTopLevel counts the comments of a recipe that are not replies
func (r *CommentRepository) CountTopLevel(ctx context.Context, recipeID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("recipe_id = ? AND parent_id IS NULL", recipeID).
		Count(&total).Error
	return total, err
}

// GetTopLevelPage returns one page of top-level comments, newest first, each
// with its direct replies attached oldest first.
func (r *CommentRepository) GetTopLevelPage(ctx context.Context, recipeID uint, limit, offset int) ([]models.CommentWithAuthor, error) {
	var top []models.CommentWithAuthor
	err := r.db.WithContext(ctx).Table("comments").
		Select(commentWithAuthorColumns).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.recipe_id = ? AND comments.parent_id IS NULL", recipeID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return top, nil
	}

	ids := make([]uint, len(top))
	index := make(map[uint]int, len(top))
	for i, c := range top {
		ids[i] = c.ID
		index[c.ID] = i
	}

	var replies []models.CommentWithAuthor
	err = r.db.WithContext(ctx).Table("comments").
		Select(commentWithAuthorColumns).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.parent_id IN ?", ids).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&replies).Error
	if err != nil {
		return nil, err
	}

	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		i := index[*reply.ParentID]
		top[i].Replies = append(top[i].Replies, reply)
	}
	return top, nil
}
