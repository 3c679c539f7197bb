package handler

import (
	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type EditProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// EditProfile updates the caller's display name
func (h *UserHandler) EditProfile(c *gin.Context) {
	userID, role := currentUser(c)

	var req EditProfileRequest
	if err := utils.BindStrictJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.EditProfile(c.Request.Context(), userID, role, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}
