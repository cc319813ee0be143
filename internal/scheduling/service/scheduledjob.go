package service

import (
	"context"

	"github.com/google/uuid"

	"dandee/internal/scheduling/repository"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/sanitizer"
)

// requiredFields must survive sanitization for a scheduled job to be
// persistable.
var requiredFields = []string{"contractor_id", "job_request_id", "job_date", "start_time", "title"}

type SchedulingService interface {
	CreateFromQuote(ctx context.Context, scheduledJob map[string]any) (map[string]any, error)
}

type schedulingService struct {
	repo repository.ScheduledJobRepository
	cfg  *config.Config
}

func NewSchedulingService(repo repository.ScheduledJobRepository, cfg *config.Config) SchedulingService {
	return &schedulingService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *schedulingService) CreateFromQuote(ctx context.Context, scheduledJob map[string]any) (map[string]any, error) {
	if s.repo == nil {
		return nil, apperrors.Unavailable("Scheduling storage is not configured")
	}
	if scheduledJob == nil {
		return nil, apperrors.InvalidInput("scheduledJob payload is required")
	}

	sanitized := sanitizer.ScheduledJob(scheduledJob)
	for _, field := range requiredFields {
		if _, ok := sanitized[field]; !ok {
			return nil, apperrors.InvalidInput("Missing required fields for scheduled job")
		}
	}

	if _, ok := sanitized["id"]; !ok {
		sanitized["id"] = uuid.NewString()
	}

	stored, err := s.repo.Insert(ctx, sanitized)
	if err != nil {
		s.cfg.Log.Error("Failed to create scheduled job",
			"job_request_id", sanitized["job_request_id"], "error", err)
		return nil, apperrors.Internal("Failed to create scheduled job", err)
	}

	s.cfg.Log.Info("Scheduled job created",
		"scheduled_job_id", stored["id"],
		"job_request_id", stored["job_request_id"],
		"contractor_id", stored["contractor_id"],
	)
	return stored, nil
}
