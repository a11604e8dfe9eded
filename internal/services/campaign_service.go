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

type CampaignService struct {
	campaignStore CampaignStore
	headlineStore HeadlineStore
	imageStore    ImageStore
	creativeStore CreativeStore
	log           *zap.Logger
}

func NewCampaignService(
	campaignStore CampaignStore,
	headlineStore HeadlineStore,
	imageStore ImageStore,
	creativeStore CreativeStore,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignStore: campaignStore,
		headlineStore: headlineStore,
		imageStore:    imageStore,
		creativeStore: creativeStore,
		log:           log,
	}
}

type CreateCampaignInput struct {
	Name        string
	Industry    string
	Audience    string
	Tone        string
	Description *string
}

// Validate reports the first failing field only.
func (in CreateCampaignInput) Validate() error {
	if in.Name == "" {
		return apperror.NewValidation("Name is required")
	}
	if in.Industry == "" {
		return apperror.NewValidation("Industry is required")
	}
	if in.Audience == "" {
		return apperror.NewValidation("Target audience is required")
	}
	if !models.ValidTone(in.Tone) {
		return apperror.NewValidation("Tone must be one of: professional, casual, exciting, trustworthy")
	}
	return nil
}

func (s *CampaignService) Create(ctx context.Context, in CreateCampaignInput) (*models.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		Name:        in.Name,
		Industry:    in.Industry,
		Audience:    in.Audience,
		Tone:        in.Tone,
		Description: in.Description,
	}
	if err := s.campaignStore.Create(ctx, campaign); err != nil {
		return nil, apperror.NewStore("Failed to create campaign", err)
	}
	return campaign, nil
}

// List returns every campaign, newest first, with headlines, images, and
// creatives (each creative expanded with its headline and image) attached.
func (s *CampaignService) List(ctx context.Context) ([]models.CampaignWithContent, error) {
	campaigns, err := s.campaignStore.List(ctx)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch campaigns", err)
	}
	if len(campaigns) == 0 {
		return []models.CampaignWithContent{}, nil
	}

	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}

	headlines, err := s.headlineStore.ListByCampaigns(ctx, ids)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch campaigns", err)
	}
	images, err := s.imageStore.ListByCampaigns(ctx, ids)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch campaigns", err)
	}
	creatives, err := s.creativeStore.ListByCampaignsWithContent(ctx, ids)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch campaigns", err)
	}

	byID := make(map[uuid.UUID]*models.CampaignWithContent, len(campaigns))
	result := make([]models.CampaignWithContent, len(campaigns))
	for i, c := range campaigns {
		result[i] = models.CampaignWithContent{
			Campaign:  c,
			Headlines: []models.Headline{},
			Images:    []models.Image{},
			Creatives: []models.Creative{},
		}
		byID[c.ID] = &result[i]
	}
	for _, h := range headlines {
		if c, ok := byID[h.CampaignID]; ok {
			c.Headlines = append(c.Headlines, h)
		}
	}
	for _, img := range images {
		if c, ok := byID[img.CampaignID]; ok {
			c.Images = append(c.Images, img)
		}
	}
	for _, cr := range creatives {
		if c, ok := byID[cr.CampaignID]; ok {
			c.Creatives = append(c.Creatives, cr)
		}
	}
	return result, nil
}

// getCampaign resolves a campaign or a NotFound error. Shared by the
// generation and pairing services.
func getCampaign(ctx context.Context, store CampaignStore, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NewNotFound("Campaign not found")
		}
		return nil, apperror.NewStore("Failed to fetch campaign", err)
	}
	return campaign, nil
}
