package repository

import (
	"context"

	"recipe-sharing-backend/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetAllRecipes returns every recipe, newest first, with ingredients and instructions
func (r *RecipeRepository) GetAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	if err := r.attachChildren(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeByID returns one recipe without its children
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, translate(err)
	}
	return &recipe, nil
}

// GetRecipeWithChildren returns one recipe with ingredients and instructions
func (r *RecipeRepository) GetRecipeWithChildren(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := r.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	list := []models.Recipe{*recipe}
	if err := r.attachChildren(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// RecipeExists reports whether a recipe with the id exists
func (r *RecipeRepository) RecipeExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateRecipe inserts the recipe and its children in one transaction
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = 0
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		for i := range recipe.Instructions {
			recipe.Instructions[i].ID = 0
			recipe.Instructions[i].RecipeID = recipe.ID
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(recipe.Instructions) > 0 {
			if err := tx.Create(&recipe.Instructions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe applies the given column updates
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteRecipe removes the recipe and every row that depends on it
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.Ingredient{},
			&models.Instruction{},
			&models.Comment{},
			&models.Rating{},
			&models.Bookmark{},
		}
		for _, model := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *RecipeRepository) attachChildren(ctx context.Context, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]uint, len(recipes))
	for i, recipe := range recipes {
		ids[i] = recipe.ID
	}
	ingredients, instructions, err := loadChildren(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for i := range recipes {
		recipes[i].Ingredients = ingredients[recipes[i].ID]
		recipes[i].Instructions = instructions[recipes[i].ID]
	}
	return nil
}

// loadChildren fetches the ingredients and ordered instructions of the given
// recipes, grouped by recipe id.
func loadChildren(ctx context.Context, db *gorm.DB, ids []uint) (map[uint][]models.Ingredient, map[uint][]models.Instruction, error) {
	var ingredients []models.Ingredient
	if err := db.WithContext(ctx).Where("recipe_id IN ?", ids).Order("id ASC").Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}
	var instructions []models.Instruction
	if err := db.WithContext(ctx).Where("recipe_id IN ?", ids).Order("step_order ASC, id ASC").Find(&instructions).Error; err != nil {
		return nil, nil, err
	}

	ingredientsByRecipe := make(map[uint][]models.Ingredient, len(ids))
	for _, ing := range ingredients {
		ingredientsByRecipe[ing.RecipeID] = append(ingredientsByRecipe[ing.RecipeID], ing)
	}
	instructionsByRecipe := make(map[uint][]models.Instruction, len(ids))
	for _, inst := range instructions {
		instructionsByRecipe[inst.RecipeID] = append(instructionsByRecipe[inst.RecipeID], inst)
	}
	return ingredientsByRecipe, instructionsByRecipe, nil
}
