package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
	"dandee/pkg/storage"
)

const maxPhotoBytes = 10 * 1024 * 1024

var (
	dataURLPattern = regexp.MustCompile(`^data:(.*?);base64,(.*)$`)
	hintPattern    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

type PhotoUpload struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type PhotoService interface {
	Upload(ctx context.Context, req *model.PhotoUploadRequest) (*PhotoUpload, error)
}

type photoService struct {
	store storage.ObjectStore
	cfg   *config.Config
}

func NewPhotoService(store storage.ObjectStore, cfg *config.Config) PhotoService {
	return &photoService{store: store, cfg: cfg}
}

func (s *photoService) Upload(ctx context.Context, req *model.PhotoUploadRequest) (*PhotoUpload, error) {
	if s.store == nil {
		return nil, apperrors.Unavailable("Photo storage is not configured")
	}
	if req.UserID == "" {
		return nil, apperrors.InvalidInput("Invalid request: userId is required")
	}
	if req.DataURL == "" {
		return nil, apperrors.InvalidInput("Invalid request: dataUrl is required")
	}

	mimeType, data, err := parseDataURL(req.DataURL)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid data URL format")
	}
	if len(data) > maxPhotoBytes {
		return nil, apperrors.PayloadTooLarge("Photo too large. Please choose an image under 10MB.")
	}

	key := fmt.Sprintf("users/%s/%s-%d.%s",
		req.UserID, sanitizeHint(req.FileNameHint), time.Now().UnixMilli(), extensionFor(mimeType))

	contentType := mimeType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	if err := s.store.Upload(ctx, key, contentType, data); err != nil {
		s.cfg.Log.Error("Failed to upload photo", "user_id", req.UserID, "key", key, "error", err)
		return nil, apperrors.Internal("Failed to upload photo to storage", err)
	}

	s.cfg.Log.Info("Profile photo uploaded", "user_id", req.UserID, "key", key, "bytes", len(data))
	return &PhotoUpload{
		URL:  s.store.PublicURL(key),
		Path: key,
	}, nil
}

func parseDataURL(dataURL string) (mimeType string, data []byte, err error) {
	match := dataURLPattern.FindStringSubmatch(dataURL)
	if match == nil {
		return "", nil, fmt.Errorf("not a base64 data URL")
	}

	decoded, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return match[1], decoded, nil
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}

func sanitizeHint(hint string) string {
	cleaned := hintPattern.ReplaceAllString(hint, "_")
	if cleaned == "" {
		return "profile"
	}
	return cleaned
}
