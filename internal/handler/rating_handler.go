package handler

import (
	"net/http"
	"strconv"

	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

type RateRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RateRecipe creates or replaces the caller's rating of a recipe
func (h *RatingHandler) RateRecipe(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	var req RateRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	rating, created, err := h.ratingService.Rate(c.Request.Context(), recipeID, userID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		utils.CreatedResponse(c, "Rating added successfully", rating)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rating updated successfully",
		"data":    rating,
	})
}

// GetAverage returns the mean rating and vote count of a recipe
func (h *RatingHandler) GetAverage(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}

	summary, err := h.ratingService.Average(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, summary)
}

// GetMyRatings lists the caller's ratings with recipe summaries
func (h *RatingHandler) GetMyRatings(c *gin.Context) {
	userID, _ := currentUser(c)

	ratings, err := h.ratingService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ratings": ratings,
		"count":   len(ratings),
	})
}

// DeleteRating removes the caller's rating of a recipe
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	recipeID, ok := parseID(c, "recipeId", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	if err := h.ratingService.Remove(c.Request.Context(), recipeID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Rating deleted successfully")
}

// GetTopRated ranks recipes by average rating
func (h *RatingHandler) GetTopRated(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	top, err := h.ratingService.TopRated(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, top)
}
