package handler

import (
	"encoding/json"
	"strings"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// GetRecipes lists all recipes with their ingredients and instructions
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// GetRecipe retrieves a specific recipe by ID
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, recipe)
}

// CreateRecipe handles a multipart form with an image and JSON-encoded
// ingredients and instructions
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, _ := currentUser(c)

	image, err := readImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ingredients, err := decodeFormList[models.Ingredient](c, "ingredients")
	if err != nil {
		respondError(c, err)
		return
	}
	instructions, err := decodeFormList[models.Instruction](c, "instructions")
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, service.CreateRecipeInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Time:         c.PostForm("time"),
		Ingredients:  ingredients,
		Instructions: instructions,
	}, image)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Recipe created successfully", recipe)
}

// UpdateRecipe applies a partial update; only the owner may call it
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	image, err := readImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, userID, service.UpdateRecipeInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Time:        c.PostForm("time"),
	}, image)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, recipe)
}

// DeleteRecipe removes a recipe and everything attached to it
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id", "recipe")
	if !ok {
		return
	}
	userID, _ := currentUser(c)

	if err := h.recipeService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Recipe deleted successfully")
}

// decodeFormList parses a form field holding a JSON array and validates
// every element.
func decodeFormList[T any](c *gin.Context, field string) ([]T, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &utils.ValidationError{Message: field + " must be a JSON array"}
	}
	for i := range items {
		if err := utils.ValidateStruct(&items[i]); err != nil {
			return nil, &utils.ValidationError{Message: field + ": " + err.Error()}
		}
	}
	return items, nil
}
