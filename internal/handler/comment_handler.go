package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateCommentRequest accepts parentId as a number, a numeric string, null
// or the string "null".
type CreateCommentRequest struct {
	Content  string          `json:"content" binding:"required"`
	ParentID json.RawMessage `json:"parentId"`
}

// GetComments lists top-level comments of a recipe with their replies
func (h *CommentHandler) GetComments(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.commentService.List(c.Request.Context(), recipeID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// CreateComment adds a comment or a reply to a recipe
func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	var req CreateCommentRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), recipeID, userID, req.Content, rawParentID(req.ParentID))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Comment created successfully", comment)
}

// DeleteComment removes a comment; allowed for its author and admins
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id", "comment")
	if !ok {
		return
	}
	userID, role := currentUser(c)

	if err := h.commentService.Delete(c.Request.Context(), id, userID, role); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Comment deleted successfully")
}

func rawParentID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	value := strings.TrimSpace(string(raw))
	if value == "null" {
		return ""
	}
	return value
}
