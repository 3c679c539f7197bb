package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"recipe-sharing-backend/internal/service"
	"recipe-sharing-backend/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const (
	imageField   = "image"
	maxImageSize = 5 << 20
)

// readImage returns the uploaded image, or nil when the request has none.
// Files over 5 MB or whose declared or sniffed type is not an image are
// rejected before anything is uploaded.
func readImage(c *gin.Context) (*service.Image, error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, &utils.ValidationError{Message: "Invalid multipart form"}
	}

	if header.Size > maxImageSize {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("Image must be at most %d MB", maxImageSize>>20)}
	}
	declared := header.Header.Get("Content-Type")
	if !strings.HasPrefix(declared, "image/") {
		return nil, &utils.ValidationError{Message: "Only image files are allowed"}
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("Image must be at most %d MB", maxImageSize>>20)}
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, &utils.ValidationError{Message: "Only image files are allowed"}
	}

	return &service.Image{Data: data, ContentType: detected.String()}, nil
}
