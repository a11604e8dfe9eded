package services

import (
	"context"
	"errors"

	"github.com/creative-studio/backend/internal/apperror"
	"github.com/creative-studio/backend/internal/models"
	"github.com/creative-studio/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreativeService struct {
	campaignStore CampaignStore
	headlineStore HeadlineStore
	imageStore    ImageStore
	creativeStore CreativeStore
	log           *zap.Logger
}

func NewCreativeService(
	campaignStore CampaignStore,
	headlineStore HeadlineStore,
	imageStore ImageStore,
	creativeStore CreativeStore,
	log *zap.Logger,
) *CreativeService {
	return &CreativeService{
		campaignStore: campaignStore,
		headlineStore: headlineStore,
		imageStore:    imageStore,
		creativeStore: creativeStore,
		log:           log,
	}
}

// CreatePair pairs a headline with an image inside a campaign. The existence
// checks run sequentially, campaign first, then headline, then image, and
// the first missing entity wins; checks are not issued concurrently so one
// request holds at most one pooled connection at a time.
func (s *CreativeService) CreatePair(ctx context.Context, campaignID, headlineID, imageID uuid.UUID) (*models.Creative, error) {
	if _, err := getCampaign(ctx, s.campaignStore, campaignID); err != nil {
		return nil, err
	}
	if _, err := s.headlineStore.GetByID(ctx, headlineID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NewNotFound("Headline not found")
		}
		return nil, apperror.NewStore("Failed to fetch headline", err)
	}
	if _, err := s.imageStore.GetByID(ctx, imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NewNotFound("Image not found")
		}
		return nil, apperror.NewStore("Failed to fetch image", err)
	}

	_, err := s.creativeStore.FindByTriple(ctx, campaignID, headlineID, imageID)
	switch {
	case err == nil:
		return nil, apperror.NewConflict("Creative pair already exists")
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, apperror.NewStore("Failed to create creative pair", err)
	}

	creative := &models.Creative{
		CampaignID: campaignID,
		HeadlineID: headlineID,
		ImageID:    imageID,
	}
	if err := s.creativeStore.Create(ctx, creative); err != nil {
		// A concurrent insert can race past the check above; the unique
		// constraint reports it as the same conflict.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperror.NewConflict("Creative pair already exists")
		}
		return nil, apperror.NewStore("Failed to create creative pair", err)
	}
	return creative, nil
}

// ListPairs returns the campaign's active creatives with their headline and
// image attached, newest first.
func (s *CreativeService) ListPairs(ctx context.Context, campaignID uuid.UUID) ([]models.Creative, error) {
	creatives, err := s.creativeStore.ListActiveWithContent(ctx, campaignID)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch creatives", err)
	}
	if creatives == nil {
		creatives = []models.Creative{}
	}
	return creatives, nil
}

// DeletePair hard-deletes the pairing. The referenced headline and image are
// never touched.
func (s *CreativeService) DeletePair(ctx context.Context, id uuid.UUID) error {
	if _, err := s.creativeStore.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperror.NewNotFound("Creative not found")
		}
		return apperror.NewStore("Failed to fetch creative", err)
	}
	if err := s.creativeStore.Delete(ctx, id); err != nil {
		return apperror.NewStore("Failed to delete creative", err)
	}
	return nil
}
