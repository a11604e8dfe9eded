package services

import (
	"context"

	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx repositories implement
// them; tests substitute in-memory fakes.

type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	List(ctx context.Context) ([]models.Campaign, error)
}

type HeadlineStore interface {
	CreateBatch(ctx context.Context, campaignID uuid.UUID, texts []string) ([]models.Headline, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Headline, error)
	ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Headline, error)
	ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Headline, error)
}

type ImageStore interface {
	CreateBatch(ctx context.Context, campaignID uuid.UUID, imageURLs []string, prompt string) ([]models.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Image, error)
	ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Image, error)
}

type CreativeStore interface {
	Create(ctx context.Context, c *models.Creative) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Creative, error)
	FindByTriple(ctx context.Context, campaignID, headlineID, imageID uuid.UUID) (*models.Creative, error)
	ListActiveWithContent(ctx context.Context, campaignID uuid.UUID) ([]models.Creative, error)
	ListByCampaignsWithContent(ctx context.Context, campaignIDs []uuid.UUID) ([]models.Creative, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
