package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
)

type fakeStore struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeStore) Upload(_ context.Context, key, contentType string, data []byte) error {
	f.key = key
	f.contentType = contentType
	f.data = data
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

func pngDataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestUploadStoresUnderUserPrefix(t *testing.T) {
	store := &fakeStore{}
	svc := NewPhotoService(store, testConfig())

	upload, err := svc.Upload(context.Background(), &model.PhotoUploadRequest{
		UserID:       "u1",
		DataURL:      pngDataURL([]byte("png-bytes")),
		FileNameHint: "my photo!",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if !strings.HasPrefix(store.key, "users/u1/my_photo_-") {
		t.Errorf("key = %q, want users/u1/my_photo_- prefix", store.key)
	}
	if !strings.HasSuffix(store.key, ".png") {
		t.Errorf("key = %q, want .png suffix", store.key)
	}
	if store.contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", store.contentType)
	}
	if upload.URL != "https://cdn.example.test/"+store.key {
		t.Errorf("URL = %q, want store public URL", upload.URL)
	}
	if upload.Path != store.key {
		t.Errorf("Path = %q, want %q", upload.Path, store.key)
	}
}

func TestUploadDefaultsHintAndExtension(t *testing.T) {
	store := &fakeStore{}
	svc := NewPhotoService(store, testConfig())

	if _, err := svc.Upload(context.Background(), &model.PhotoUploadRequest{
		UserID:  "u1",
		DataURL: "data:image/x-unknown;base64," + base64.StdEncoding.EncodeToString([]byte("x")),
	}); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if !strings.HasPrefix(store.key, "users/u1/profile-") {
		t.Errorf("key = %q, want profile default hint", store.key)
	}
	if !strings.HasSuffix(store.key, ".jpg") {
		t.Errorf("key = %q, want jpg default extension", store.key)
	}
}

func TestUploadRejectsMalformedDataURL(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{"no scheme", "image/png;base64,AAAA"},
		{"not base64 marker", "data:image/png;hex,AAAA"},
		{"invalid base64", "data:image/png;base64,not-base-64!!"},
	}

	svc := NewPhotoService(&fakeStore{}, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), &model.PhotoUploadRequest{
				UserID:  "u1",
				DataURL: tt.dataURL,
			})
			if apperrors.AsAppError(err).StatusCode() != 400 {
				t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
			}
		})
	}
}

func TestUploadRejectsOversizedPhoto(t *testing.T) {
	svc := NewPhotoService(&fakeStore{}, testConfig())

	oversized := bytes.Repeat([]byte{0xAB}, maxPhotoBytes+1)
	_, err := svc.Upload(context.Background(), &model.PhotoUploadRequest{
		UserID:  "u1",
		DataURL: pngDataURL(oversized),
	})
	if apperrors.AsAppError(err).StatusCode() != 413 {
		t.Errorf("status = %d, want 413", apperrors.AsAppError(err).StatusCode())
	}
}

func TestUploadWithoutStore(t *testing.T) {
	svc := NewPhotoService(nil, testConfig())

	_, err := svc.Upload(context.Background(), &model.PhotoUploadRequest{
		UserID:  "u1",
		DataURL: pngDataURL([]byte("x")),
	})
	if apperrors.AsAppError(err).StatusCode() != 503 {
		t.Errorf("status = %d, want 503", apperrors.AsAppError(err).StatusCode())
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "jpg"},
		{"image/JPG", "jpg"},
		{"image/png", "png"},
		{"image/gif", "gif"},
		{"image/webp", "webp"},
		{"application/pdf", "jpg"},
		{"", "jpg"},
	}
	for _, tt := range tests {
		if got := extensionFor(tt.mime); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
