package handler

import (
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth     *AuthHandler
	Recipe   *RecipeHandler
	Comment  *CommentHandler
	Rating   *RatingHandler
	Bookmark *BookmarkHandler
	User     *UserHandler
}

// RegisterRoutes mounts the API under /api. requireAuth guards every route
// that acts on behalf of a user.
func RegisterRoutes(r *gin.Engine, h Handlers, requireAuth gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "recipe-sharing-backend",
		})
	})

	api := r.Group("/api")

	// Auth routes (public, refresh token travels in a cookie)
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.Recipe.GetRecipes)
		recipes.GET("/:id", h.Recipe.GetRecipe)
		recipes.POST("", requireAuth, h.Recipe.CreateRecipe)
		recipes.PATCH("/:id", requireAuth, h.Recipe.UpdateRecipe)
		recipes.DELETE("/:id", requireAuth, h.Recipe.DeleteRecipe)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/recipe/:recipeId", h.Comment.GetComments)
		comments.POST("/recipe/:recipeId", requireAuth, h.Comment.CreateComment)
		comments.DELETE("/:id", requireAuth, h.Comment.DeleteComment)
	}

	ratings := api.Group("/ratings")
	{
		ratings.GET("/top", h.Rating.GetTopRated)
		ratings.GET("/my", requireAuth, h.Rating.GetMyRatings)
		ratings.GET("/recipe/:recipeId", h.Rating.GetAverage)
		ratings.POST("/recipe/:recipeId", requireAuth, h.Rating.RateRecipe)
		ratings.DELETE("/recipe/:recipeId", requireAuth, h.Rating.DeleteRating)
	}

	bookmarks := api.Group("/bookmarks")
	bookmarks.Use(requireAuth)
	{
		bookmarks.GET("", h.Bookmark.GetMyBookmarks)
		bookmarks.POST("", h.Bookmark.AddBookmark)
		bookmarks.DELETE("/:recipeId", h.Bookmark.RemoveBookmark)
	}

	users := api.Group("/users")
	users.Use(requireAuth)
	{
		users.PATCH("/profile", h.User.EditProfile)
	}
}
