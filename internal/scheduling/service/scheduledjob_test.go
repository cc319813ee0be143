package service

import (
	"context"
	"io"
	"testing"

	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/logger"
)

type fakeScheduledJobRepo struct {
	inserted map[string]any
}

func (f *fakeScheduledJobRepo) Insert(_ context.Context, job map[string]any) (map[string]any, error) {
	f.inserted = job
	return job, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func validScheduledJob() map[string]any {
	return map[string]any{
		"contractor_id":  "c1",
		"job_request_id": "job-1",
		"job_date":       "2026-09-15",
		"start_time":     "09:00:00",
		"title":          "  Fix the sink  ",
		"quote_id":       "q1",
		"drop_me":        "x",
	}
}

func TestCreateFromQuoteSanitizesAndInjectsID(t *testing.T) {
	repo := &fakeScheduledJobRepo{}
	svc := NewSchedulingService(repo, testConfig())

	stored, err := svc.CreateFromQuote(context.Background(), validScheduledJob())
	if err != nil {
		t.Fatalf("CreateFromQuote returned error: %v", err)
	}

	if stored["title"] != "Fix the sink" {
		t.Errorf("title = %v, want trimmed", stored["title"])
	}
	if _, ok := stored["drop_me"]; ok {
		t.Error("non-allow-listed keys must be dropped")
	}
	if stored["id"] == "" || stored["id"] == nil {
		t.Error("expected generated id")
	}
	if repo.inserted == nil {
		t.Fatal("sanitized job must be persisted")
	}
	if repo.inserted["quote_id"] != "q1" {
		t.Errorf("quote_id = %v, want q1", repo.inserted["quote_id"])
	}
}

func TestCreateFromQuoteKeepsCallerID(t *testing.T) {
	svc := NewSchedulingService(&fakeScheduledJobRepo{}, testConfig())

	job := validScheduledJob()
	job["id"] = "sched-42"
	stored, err := svc.CreateFromQuote(context.Background(), job)
	if err != nil {
		t.Fatalf("CreateFromQuote returned error: %v", err)
	}
	if stored["id"] != "sched-42" {
		t.Errorf("id = %v, want caller-supplied sched-42", stored["id"])
	}
}

func TestCreateFromQuoteRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
	}{
		{"missing contractor", func(m map[string]any) { delete(m, "contractor_id") }},
		{"missing job request", func(m map[string]any) { delete(m, "job_request_id") }},
		{"missing date", func(m map[string]any) { delete(m, "job_date") }},
		{"missing start time", func(m map[string]any) { delete(m, "start_time") }},
		{"blank title drops out", func(m map[string]any) { m["title"] = "   " }},
	}

	repo := &fakeScheduledJobRepo{}
	svc := NewSchedulingService(repo, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validScheduledJob()
			tt.mutate(job)

			_, err := svc.CreateFromQuote(context.Background(), job)
			appErr := apperrors.AsAppError(err)
			if appErr.StatusCode() != 400 {
				t.Fatalf("status = %d, want 400", appErr.StatusCode())
			}
			if appErr.Message != "Missing required fields for scheduled job" {
				t.Errorf("message = %q", appErr.Message)
			}
		})
	}
	if repo.inserted != nil {
		t.Error("invalid payloads must not be persisted")
	}
}

func TestCreateFromQuoteRequiresPayload(t *testing.T) {
	svc := NewSchedulingService(&fakeScheduledJobRepo{}, testConfig())

	_, err := svc.CreateFromQuote(context.Background(), nil)
	if apperrors.AsAppError(err).StatusCode() != 400 {
		t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
	}
}

func TestCreateFromQuoteWithoutStore(t *testing.T) {
	svc := NewSchedulingService(nil, testConfig())

	_, err := svc.CreateFromQuote(context.Background(), validScheduledJob())
	if apperrors.AsAppError(err).StatusCode() != 503 {
		t.Errorf("status = %d, want 503", apperrors.AsAppError(err).StatusCode())
	}
}
