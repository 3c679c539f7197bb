package handler

import (
	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
	}
}

type AddBookmarkRequest struct {
	RecipeID uint `json:"recipeId" binding:"required,gt=0"`
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	userID, _ := currentUser(c)

	var req AddBookmarkRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	bookmark, err := h.bookmarkService.Add(c.Request.Context(), userID, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Recipe bookmarked successfully", bookmark)
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	if err := h.bookmarkService.Remove(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Bookmark removed successfully")
}

func (h *BookmarkHandler) GetMyBookmarks(c *gin.Context) {
	userID, _ := currentUser(c)

	bookmarks, err := h.bookmarkService.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bookmarks": bookmarks,
		"count":     len(bookmarks),
	})
}
