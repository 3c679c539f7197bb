package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"recipe-sharing-backend/internal/models"
	"recipe-sharing-backend/internal/repository"
)

type RecipeService struct {
	recipeRepo RecipeStore
	auditRepo  AuditStore
	images     ImageStore
}

func NewRecipeService(recipeRepo RecipeStore, auditRepo AuditStore, images ImageStore) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		auditRepo:  auditRepo,
		images:     images,
	}
}

// Image is an uploaded image that already passed size and type checks.
type Image struct {
	Data        []byte
	ContentType string
}

// CreateRecipeInput holds the fields of a new recipe.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Time         string
	Ingredients  []models.Ingredient
	Instructions []models.Instruction
}

// UpdateRecipeInput holds a partial update. Empty strings keep the stored value.
type UpdateRecipeInput struct {
	Title       string
	Description string
	Time        string
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetRecipeWithChildren(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Recipe not found")
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// Create uploads the image and stores the recipe with its ingredients and
// instructions.
func (s *RecipeService) Create(ctx context.Context, ownerID uint, input CreateRecipeInput, image *Image) (*models.Recipe, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Time = strings.TrimSpace(input.Time)
	if input.Title == "" || input.Description == "" || input.Time == "" {
		return nil, invalidInput("title, description and time are required")
	}
	if image == nil || len(image.Data) == 0 {
		return nil, invalidInput("Image is required")
	}

	url, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     url,
		Time:         input.Time,
		UserID:       ownerID,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if err := s.recipeRepo.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// Update applies a partial update. Only the owner may update a recipe.
func (s *RecipeService) Update(ctx context.Context, id, actorID uint, input UpdateRecipeInput, image *Image) (*models.Recipe, error) {
	recipe, err := s.ownedRecipe(ctx, id, actorID, "update")
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(input.Title); v != "" {
		updates["title"] = v
	}
	if v := strings.TrimSpace(input.Description); v != "" {
		updates["description"] = v
	}
	if v := strings.TrimSpace(input.Time); v != "" {
		updates["time"] = v
	}
	if image != nil && len(image.Data) > 0 {
		url, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		updates["image_url"] = url
	}

	if len(updates) > 0 {
		if err := s.recipeRepo.UpdateRecipe(ctx, recipe.ID, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Recipe not found")
			}
			return nil, fmt.Errorf("failed to update recipe: %w", err)
		}
	}

	return s.Get(ctx, recipe.ID)
}

// Delete removes a recipe together with everything that references it
func (s *RecipeService) Delete(ctx context.Context, id, actorID uint) error {
	recipe, err := s.ownedRecipe(ctx, id, actorID, "delete")
	if err != nil {
		return err
	}

	if err := s.recipeRepo.DeleteRecipe(ctx, recipe.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Recipe not found")
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if s.auditRepo != nil {
		details := fmt.Sprintf("Recipe %d (%s) deleted", recipe.ID, recipe.Title)
		if err := s.auditRepo.CreateAuditLog(ctx, &actorID, "recipe_deleted", details); err != nil {
			slog.WarnContext(ctx, "failed to write audit log", "action", "recipe_deleted", "error", err)
		}
	}
	return nil
}

func (s *RecipeService) ownedRecipe(ctx context.Context, id, actorID uint, action string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Recipe not found")
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe.UserID != actorID {
		return nil, forbidden("You can only %s your own recipes", action)
	}
	return recipe, nil
}

func (s *RecipeService) storeImage(ctx context.Context, image *Image) (string, error) {
	if !strings.HasPrefix(image.ContentType, "image/") {
		return "", invalidInput("Only image files are allowed")
	}
	url, err := s.images.StoreImage(ctx, image.Data, image.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return url, nil
}
