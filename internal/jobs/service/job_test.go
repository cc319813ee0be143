package service

import (
	"context"
	"io"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/logger"
	"dandee/pkg/model"
)

type fakeJobRepo struct {
	job           *model.JobRequest
	updatedStatus string
	updateCalled  bool
}

func (f *fakeJobRepo) FindByID(_ context.Context, id string) (*model.JobRequest, error) {
	if f.job == nil || f.job.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.job, nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id, status string) (*model.JobRequest, error) {
	f.updateCalled = true
	if f.job == nil || f.job.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	f.updatedStatus = status
	updated := *f.job
	updated.Status = status
	return &updated, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func TestUpdateStatusNormalizesUnderscore(t *testing.T) {
	repo := &fakeJobRepo{job: &model.JobRequest{ID: "job-1", Status: "accepted"}}
	svc := NewJobService(repo, nil, testConfig())

	updated, err := svc.UpdateStatus(context.Background(), &model.JobStatusUpdateRequest{
		JobRequestID: "job-1",
		Status:       "in_progress",
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != "in-progress" {
		t.Errorf("Status = %q, want in-progress", updated.Status)
	}
	if repo.updatedStatus != "in-progress" {
		t.Errorf("persisted status = %q, want in-progress", repo.updatedStatus)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeJobRepo{job: &model.JobRequest{ID: "job-1"}}
	svc := NewJobService(repo, nil, testConfig())

	_, err := svc.UpdateStatus(context.Background(), &model.JobStatusUpdateRequest{
		JobRequestID: "job-1",
		Status:       "bogus",
	})
	if apperrors.AsAppError(err).StatusCode() != 400 {
		t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
	}
	if repo.updateCalled {
		t.Error("invalid status must not reach the store")
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, nil, testConfig())

	_, err := svc.UpdateStatus(context.Background(), &model.JobStatusUpdateRequest{
		JobRequestID: "missing",
		Status:       "completed",
	})
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("status = %d, want 404", apperrors.AsAppError(err).StatusCode())
	}
}

func TestUpdateStatusRequiresFields(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, nil, testConfig())

	_, err := svc.UpdateStatus(context.Background(), &model.JobStatusUpdateRequest{Status: "open"})
	if apperrors.AsAppError(err).StatusCode() != 400 {
		t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
	}
}

func TestDetailsAppliesDisplayDefaults(t *testing.T) {
	repo := &fakeJobRepo{job: &model.JobRequest{ID: "job-1", Status: "open"}}
	svc := NewJobService(repo, nil, testConfig())

	details, err := svc.Details(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}

	if details.Title != "Untitled Job" {
		t.Errorf("Title = %q, want Untitled Job", details.Title)
	}
	if details.Location != "Location TBD" {
		t.Errorf("Location = %q, want Location TBD", details.Location)
	}
	if details.Urgency != "medium" {
		t.Errorf("Urgency = %q, want medium", details.Urgency)
	}
	if details.Category != "general" {
		t.Errorf("Category = %q, want general", details.Category)
	}
	if details.CustomerName != "Customer" {
		t.Errorf("CustomerName = %q, want Customer", details.CustomerName)
	}
	if details.Time != "09:00:00" {
		t.Errorf("Time = %q, want 09:00:00", details.Time)
	}
	if details.Date == "" {
		t.Error("Date must default to today")
	}
}

func TestDetailsPrefersAddressOverLocation(t *testing.T) {
	repo := &fakeJobRepo{job: &model.JobRequest{ID: "job-1", Address: "12 Main St", Location: "Troy"}}
	svc := NewJobService(repo, nil, testConfig())

	details, err := svc.Details(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Details returned error: %v", err)
	}
	if details.Location != "12 Main St" {
		t.Errorf("Location = %q, want address to win", details.Location)
	}
}

func TestLocationTrimsFullAddress(t *testing.T) {
	repo := &fakeJobRepo{job: &model.JobRequest{ID: "job-1", Address: "  12 Main St  "}}
	svc := NewJobService(repo, nil, testConfig())

	location, err := svc.Location(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Location returned error: %v", err)
	}
	if location.FullAddress != "12 Main St" {
		t.Errorf("FullAddress = %q, want trimmed", location.FullAddress)
	}
}
