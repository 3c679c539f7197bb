package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

const (
	maxCommentLength   = 300
	defaultCommentPage = 1
	defaultCommentSize = 10
	maxCommentSize     = 100
	maxCommentPage     = 100000
)

type CommentService struct {
	commentRepo CommentStore
	recipeRepo  RecipeLookup
}

func NewCommentService(commentRepo CommentStore, recipeRepo RecipeLookup) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
	}
}

// CommentPage is one page of top-level comments with their replies
type CommentPage struct {
	Comments   []models.CommentWithAuthor `json:"comments"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"totalPages"`
	Total      int64                      `json:"total"`
}

// List returns a page of top-level comments for a recipe, newest first.
// Replies are attached and never count toward paging.
func (s *CommentService) List(ctx context.Context, recipeID uint, page, limit int) (*CommentPage, error) {
	if page < 1 {
		page = defaultCommentPage
	}
	if page > maxCommentPage {
		page = maxCommentPage
	}
	if limit < 1 {
		limit = defaultCommentSize
	}
	if limit > maxCommentSize {
		limit = maxCommentSize
	}

	total, err := s.commentRepo.CountTopLevel(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	comments, err := s.commentRepo.GetTopLevelPage(ctx, recipeID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	if comments == nil {
		comments = []models.CommentWithAuthor{}
	}

	return &CommentPage{
		Comments:   comments,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Total:      total,
	}, nil
}

// Create adds a comment or a reply. parentID is the raw client value; "",
// whitespace, "0" and any casing of "null" mean a top-level comment.
func (s *CommentService) Create(ctx context.Context, recipeID, authorID uint, content, parentID string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidInput("Content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, invalidInput("Content must be at most %d characters long", maxCommentLength)
	}

	exists, err := s.recipeRepo.RecipeExists(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, notFound("Recipe not found")
	}

	parent, err := s.resolveParent(ctx, recipeID, parentID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		RecipeID: recipeID,
		UserID:   authorID,
		Content:  content,
		ParentID: parent,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// resolveParent returns the id of a valid top-level parent or nil.
func (s *CommentService) resolveParent(ctx context.Context, recipeID uint, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" || strings.EqualFold(raw, "null") {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, invalidInput("Invalid parent comment id")
	}

	parent, err := s.commentRepo.GetCommentByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalidInput("Parent comment not found")
		}
		return nil, fmt.Errorf("failed to get parent comment: %w", err)
	}
	if parent.ParentID != nil {
		return nil, invalidInput("Cannot reply to a reply")
	}
	if parent.RecipeID != recipeID {
		return nil, invalidInput("Parent comment belongs to another recipe")
	}

	parentID := parent.ID
	return &parentID, nil
}

// Delete removes a comment (and its replies) when the actor wrote it or is an admin
func (s *CommentService) Delete(ctx context.Context, commentID, actorID uint, actorRole string) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Comment not found")
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.UserID != actorID && actorRole != models.RoleAdmin {
		return forbidden("You can only delete your own comments")
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Comment not found")
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
