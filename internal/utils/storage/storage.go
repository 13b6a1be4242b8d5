package storage

import (
	"context"
	"fmt"
	"strings"

	"rhea-backend/internal/utils"
)

type ObjectStorage interface {
	// PutObject stores data under key and returns its public link.
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteObject(ctx context.Context, key string) error
	GetObjectKeyFromLink(link string) string
}

// NewObjectStorage picks the driver named by STORAGE_DRIVER, defaulting to s3.
func NewObjectStorage(ctx context.Context) (ObjectStorage, error) {
	switch strings.ToLower(utils.GetConfig("STORAGE_DRIVER")) {
	case "", "s3":
		return NewAwsS3(ctx)
	case "gcs":
		return NewGCS(ctx)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", utils.GetConfig("STORAGE_DRIVER"))
	}
}

func keyFromLink(link, prefix string) string {
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
