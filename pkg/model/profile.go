package model

// ProfileUpsertRequest carries a free-form profile payload. The payload is
// deliberately untyped: the sanitizer decides what survives per profile type.
type ProfileUpsertRequest struct {
	UserID  string         `json:"userId" validate:"required"`
	Profile map[string]any `json:"profile" validate:"required"`
}

// OnboardingRequest completes signup: auth metadata and a first profile, each
// optional and applied independently.
type OnboardingRequest struct {
	UserID      string         `json:"userId" validate:"required"`
	Metadata    map[string]any `json:"metadata"`
	Profile     map[string]any `json:"profile"`
	ProfileType string         `json:"profileType"`
}

type OnboardingResponse struct {
	Success             bool           `json:"success"`
	MetadataUpdated     bool           `json:"metadataUpdated"`
	ProfileUpdated      bool           `json:"profileUpdated"`
	UpdatedUserMetadata map[string]any `json:"updatedUserMetadata,omitempty"`
	ProfileData         map[string]any `json:"profileData,omitempty"`
}

// PhotoUploadRequest carries a base64 data URI captured on-device.
type PhotoUploadRequest struct {
	UserID       string `json:"userId" validate:"required"`
	DataURL      string `json:"dataUrl" validate:"required"`
	FileNameHint string `json:"fileNameHint"`
}
