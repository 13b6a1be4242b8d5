package storage

import (
	"context"
	"fmt"

	"rhea-backend/internal/utils"

	"cloud.google.com/go/storage"
)

type GCS struct {
	client *storage.Client
	bucket string
}

// NewGCS relies on GOOGLE_APPLICATION_CREDENTIALS for auth.
func NewGCS(ctx context.Context) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCS{
		client: client,
		bucket: utils.GetConfig("GCS_BUCKET"),
	}, nil
}

func (g *GCS) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return g.linkPrefix() + key, nil
}

func (g *GCS) DeleteObject(ctx context.Context, key string) error {
	return g.client.Bucket(g.bucket).Object(key).Delete(ctx)
}

func (g *GCS) GetObjectKeyFromLink(link string) string {
	return keyFromLink(link, g.linkPrefix())
}

func (g *GCS) linkPrefix() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", g.bucket)
}
