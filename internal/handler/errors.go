package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError writes the status that matches the error kind. Errors without
// a kind are logged and reported as a generic internal error.
func respondError(c *gin.Context, err error) {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Message)
		return
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		utils.ErrorResponse(c, statusFor(svcErr.Kind), svcErr.Message)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

func statusFor(kind error) int {
	switch kind {
	case service.ErrInvalidInput, service.ErrConflict:
		return http.StatusBadRequest
	case service.ErrNotFound:
		return http.StatusNotFound
	case service.ErrUnauthorized:
		return http.StatusUnauthorized
	case service.ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the identity set by the auth middleware
func currentUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	r, _ := role.(string)
	return id, r
}
