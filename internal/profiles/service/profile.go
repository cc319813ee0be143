package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"dandee/internal/profiles/repository"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
	"dandee/pkg/sanitizer"
)

type ProfileService interface {
	CompleteOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingResponse, error)
	UpsertProfile(ctx context.Context, profileType sanitizer.ProfileType, req *model.ProfileUpsertRequest) (map[string]any, error)
	GetProfile(ctx context.Context, profileType sanitizer.ProfileType, userID string) (map[string]any, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
	cfg      *config.Config
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository, cfg *config.Config) ProfileService {
	return &profileService{
		profiles: profiles,
		users:    users,
		cfg:      cfg,
	}
}

// ProfileTypeFrom maps a request string onto an allow-list. Anything that is
// not explicitly a contractor is treated as a customer.
func ProfileTypeFrom(s string) sanitizer.ProfileType {
	if s == string(sanitizer.Contractor) {
		return sanitizer.Contractor
	}
	return sanitizer.Customer
}

func (s *profileService) ready() error {
	if s.profiles == nil || s.users == nil {
		return apperrors.Unavailable("Profile storage is not configured")
	}
	return nil
}

// CompleteOnboarding applies the metadata and profile legs independently: a
// missing leg is skipped, not an error, and the response flags record what
// actually happened.
func (s *profileService) CompleteOnboarding(ctx context.Context, req *model.OnboardingRequest) (*model.OnboardingResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.UserID == "" {
		return nil, apperrors.InvalidInput("userId is required")
	}

	resp := &model.OnboardingResponse{Success: true}
	profileType := ProfileTypeFrom(req.ProfileType)

	if len(req.Metadata) > 0 {
		metadata, err := s.users.UpdateMetadata(ctx, req.UserID, req.Metadata)
		if err != nil {
			s.cfg.Log.Error("Failed to update user metadata", "user_id", req.UserID, "error", err)
			return nil, apperrors.Internal("Failed to update user metadata", err)
		}
		resp.MetadataUpdated = true
		resp.UpdatedUserMetadata = metadata
	} else {
		s.cfg.Log.Debug("No metadata payload provided, skipping metadata update", "user_id", req.UserID)
	}

	if len(req.Profile) > 0 {
		sanitized := sanitizer.Profile(req.Profile, profileType, req.UserID)
		if sanitizer.HasProfileFields(sanitized) {
			stored, err := s.profiles.Upsert(ctx, profileType, sanitized)
			if err != nil {
				s.cfg.Log.Error("Failed to upsert profile",
					"user_id", req.UserID, "profile_type", profileType, "error", err)
				return nil, apperrors.Internal("Failed to upsert profile", err)
			}
			resp.ProfileUpdated = true
			resp.ProfileData = stored
		} else {
			s.cfg.Log.Debug("Profile payload sanitized to empty object, skipping upsert", "user_id", req.UserID)
		}
	}

	s.cfg.Log.Info("Onboarding completed",
		"user_id", req.UserID,
		"metadata_updated", resp.MetadataUpdated,
		"profile_updated", resp.ProfileUpdated,
	)
	return resp, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, profileType sanitizer.ProfileType, req *model.ProfileUpsertRequest) (map[string]any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.UserID == "" || req.Profile == nil {
		return nil, apperrors.InvalidInput("userId and profile are required")
	}

	sanitized := sanitizer.Profile(req.Profile, profileType, req.UserID)
	if !sanitizer.HasProfileFields(sanitized) {
		return nil, apperrors.InvalidInput("No valid " + string(profileType) + " profile fields provided")
	}

	// first_name and last_name are NOT NULL columns for customers; backfill
	// them from the raw payload so an upsert never violates the constraint.
	if profileType == sanitizer.Customer {
		backfillName(sanitized, req.Profile, "first_name")
		backfillName(sanitized, req.Profile, "last_name")
	}

	stored, err := s.profiles.Upsert(ctx, profileType, sanitized)
	if err != nil {
		s.cfg.Log.Error("Failed to upsert profile",
			"user_id", req.UserID, "profile_type", profileType, "error", err)
		return nil, apperrors.Internal("Failed to upsert "+string(profileType)+" profile", err)
	}

	s.cfg.Log.Info("Profile saved", "user_id", req.UserID, "profile_type", profileType)
	return stored, nil
}

func (s *profileService) GetProfile(ctx context.Context, profileType sanitizer.ProfileType, userID string) (map[string]any, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, apperrors.InvalidInput("userId parameter is required")
	}

	stored, err := s.profiles.FindByUser(ctx, profileType, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if profileType == sanitizer.Contractor {
				return nil, apperrors.NotFound("Contractor profile")
			}
			return nil, apperrors.NotFound("Customer profile")
		}
		s.cfg.Log.Error("Failed to fetch profile",
			"user_id", userID, "profile_type", profileType, "error", err)
		return nil, apperrors.Internal("Failed to fetch "+string(profileType)+" profile", err)
	}
	return stored, nil
}

func backfillName(sanitized, raw map[string]any, field string) {
	if _, ok := sanitized[field]; ok {
		return
	}
	if v, ok := raw[field].(string); ok {
		sanitized[field] = v
		return
	}
	sanitized[field] = ""
}
