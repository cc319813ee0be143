package storage

import (
	"context"

	"dandee/pkg/logger"
)

// ObjectStore is the object-storage collaborator used for profile photos.
type ObjectStore interface {
	// Upload writes data under key and returns nothing but an error; the key
	// namespaces objects by owner so uploads never collide across users.
	Upload(ctx context.Context, key, contentType string, data []byte) error

	// PublicURL returns the browser-reachable URL for an uploaded key.
	PublicURL(key string) string
}

type Config struct {
	Bucket       string
	Region       string
	AWSAccessKey string
	AWSSecretKey string
}

// New builds the S3-backed store, or returns nil when no bucket is
// configured so photo uploads answer 503.
func New(log *logger.Logger, cfg Config) ObjectStore {
	if cfg.Bucket == "" {
		log.Warn("Object storage bucket not configured, photo uploads disabled")
		return nil
	}

	store, err := newS3Store(cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage", "error", err)
	}

	log.Info("Object storage initialized", "bucket", cfg.Bucket, "region", cfg.Region)
	return store
}
