package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"dandee/internal/jobs/repository"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/events"
	"dandee/pkg/model"
)

// allowedStatuses is the closed job lifecycle. The single accepted alias,
// in_progress, is normalized before membership is checked.
var allowedStatuses = map[string]struct{}{
	"open":        {},
	"quoted":      {},
	"accepted":    {},
	"in-progress": {},
	"completed":   {},
	"cancelled":   {},
}

type LocationInfo struct {
	JobID       string `json:"jobId"`
	Address     string `json:"address"`
	Location    string `json:"location"`
	FullAddress string `json:"fullAddress"`
}

type StatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type JobService interface {
	Details(ctx context.Context, id string) (*model.JobDetails, error)
	Location(ctx context.Context, id string) (*LocationInfo, error)
	UpdateStatus(ctx context.Context, req *model.JobStatusUpdateRequest) (*StatusUpdate, error)
}

type jobService struct {
	repo      repository.JobRepository
	publisher *events.Publisher
	cfg       *config.Config
}

func NewJobService(repo repository.JobRepository, publisher *events.Publisher, cfg *config.Config) JobService {
	return &jobService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *jobService) ready() error {
	if s.repo == nil {
		return apperrors.Unavailable("Job storage is not configured")
	}
	return nil
}

// Details returns the defaulted read shape contractors see while quoting.
// Blank columns fall back to display defaults rather than surfacing as
// missing data.
func (s *jobService) Details(ctx context.Context, id string) (*model.JobDetails, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.InvalidInput("jobId is required")
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Job")
		}
		s.cfg.Log.Error("Failed to fetch job details", "job_id", id, "error", err)
		return nil, apperrors.Internal("Failed to fetch job details", err)
	}

	return &model.JobDetails{
		ID:            job.ID,
		Title:         orDefault(job.Title, "Untitled Job"),
		Description:   job.Description,
		Location:      firstNonEmpty(job.Address, job.Location, "Location TBD"),
		Address:       job.Address,
		Date:          orDefault(job.PreferredDate, time.Now().Format("2006-01-02")),
		Time:          orDefault(job.PreferredTime, "09:00:00"),
		Urgency:       orDefault(job.Urgency, "medium"),
		Category:      orDefault(job.Category, "general"),
		BudgetMin:     job.BudgetMin,
		BudgetMax:     job.BudgetMax,
		CustomerName:  orDefault(job.CustomerName, "Customer"),
		CustomerID:    job.CustomerID,
		CustomerEmail: job.CustomerEmail,
		CustomerPhone: job.CustomerPhone,
		Status:        job.Status,
	}, nil
}

func (s *jobService) Location(ctx context.Context, id string) (*LocationInfo, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.InvalidInput("jobId is required")
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Job")
		}
		s.cfg.Log.Error("Failed to fetch job location", "job_id", id, "error", err)
		return nil, apperrors.Internal("Failed to fetch job location", err)
	}

	fullAddress := firstNonEmpty(job.Address, job.Location, "")
	return &LocationInfo{
		JobID:       job.ID,
		Address:     job.Address,
		Location:    job.Location,
		FullAddress: strings.TrimSpace(fullAddress),
	}, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, req *model.JobStatusUpdateRequest) (*StatusUpdate, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if req.JobRequestID == "" || req.Status == "" {
		return nil, apperrors.InvalidInput("jobRequestId and status are required")
	}

	normalized := req.Status
	if normalized == "in_progress" {
		normalized = "in-progress"
	}
	if _, ok := allowedStatuses[normalized]; !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid status %q", req.Status))
	}

	job, err := s.repo.UpdateStatus(ctx, req.JobRequestID, normalized)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundWithID("Job request", req.JobRequestID)
		}
		s.cfg.Log.Error("Failed to update job status",
			"job_request_id", req.JobRequestID, "status", normalized, "error", err)
		return nil, apperrors.Internal("Failed to update job status", err)
	}

	s.cfg.Log.Info("Job status updated", "job_request_id", job.ID, "status", job.Status)
	s.publisher.Publish(ctx, job.ID, "job.status_changed", map[string]any{
		"job_request_id": job.ID,
		"status":         job.Status,
	})

	return &StatusUpdate{ID: job.ID, Status: job.Status}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
