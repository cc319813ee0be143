package service

import (
	"context"

	"dandee/internal/reviews/repository"
	"dandee/pkg/config"
	apperrors "dandee/pkg/errors"
	"dandee/pkg/model"
)

type ReviewService interface {
	ListByContractor(ctx context.Context, contractorID string) ([]*model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	cfg  *config.Config
}

func NewReviewService(repo repository.ReviewRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *reviewService) ListByContractor(ctx context.Context, contractorID string) ([]*model.Review, error) {
	if s.repo == nil {
		return nil, apperrors.Unavailable("Review storage is not configured")
	}
	if contractorID == "" {
		return nil, apperrors.InvalidInput("contractorId is required")
	}

	reviews, err := s.repo.FindByContractor(ctx, contractorID)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch contractor reviews", "contractor_id", contractorID, "error", err)
		return nil, apperrors.Internal("Failed to fetch reviews", err)
	}
	return reviews, nil
}
