package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-sharing-backend/internal/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ImageStore uploads recipe images and returns their public URL.
type ImageStore interface {
	StoreImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// New returns the image store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (ImageStore, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "minio":
		return NewMinioStore(ctx, cfg)
	case "s3":
		return NewS3Store(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// objectKey builds a date-partitioned random key such as
// recipes/2024/5/17/<uuid>.png
func objectKey(now time.Time, contentType string) string {
	ext := ""
	if mt := mimetype.Lookup(contentType); mt != nil {
		ext = mt.Extension()
	}
	return fmt.Sprintf("recipes/%d/%d/%d/%s%s", now.Year(), now.Month(), now.Day(), uuid.New(), ext)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
