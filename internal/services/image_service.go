package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/creative-studio/backend/internal/ai"
	"github.com/creative-studio/backend/internal/apperror"
	"github.com/creative-studio/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 16:9 at standard quality for every marketing image.
const (
	imageSize    = "1792x1024"
	imageQuality = "standard"
)

type ImageService struct {
	campaignStore CampaignStore
	imageStore    ImageStore
	oracle        ai.Oracle
	maxCount      int
	log           *zap.Logger
}

func NewImageService(
	campaignStore CampaignStore,
	imageStore ImageStore,
	oracle ai.Oracle,
	maxCount int,
	log *zap.Logger,
) *ImageService {
	return &ImageService{
		campaignStore: campaignStore,
		imageStore:    imageStore,
		oracle:        oracle,
		maxCount:      maxCount,
		log:           log,
	}
}

// ImageContext overrides campaign fields for one generation request. Empty
// fields fall back to the stored campaign.
type ImageContext struct {
	Industry    string
	Audience    string
	Tone        string
	Description string
}

type GeneratedImage struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"imageUrl"`
	Prompt   string    `json:"prompt"`
}

// Generate issues count independent oracle calls concurrently and persists
// all results in one transaction. The batch is all-or-nothing: the first
// failed call cancels the rest and nothing is persisted.
func (s *ImageService) Generate(ctx context.Context, campaignID uuid.UUID, count int, ictx ImageContext) ([]GeneratedImage, error) {
	if count < minGenerateCount || count > s.maxCount {
		return nil, apperror.NewValidation(fmt.Sprintf("count must be between %d and %d", minGenerateCount, s.maxCount))
	}

	campaign, err := getCampaign(ctx, s.campaignStore, campaignID)
	if err != nil {
		return nil, err
	}

	prompt := buildImagePrompt(resolveImageContext(ictx, campaign))

	urls := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			url, err := s.oracle.GenerateImage(gctx, prompt, imageSize, imageQuality)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("image generation failed", zap.String("campaign_id", campaignID.String()), zap.Error(err))
		return nil, apperror.NewGeneration("Failed to generate images", err)
	}

	images, err := s.imageStore.CreateBatch(ctx, campaignID, urls, prompt)
	if err != nil {
		return nil, apperror.NewStore("Failed to generate images", err)
	}

	out := make([]GeneratedImage, len(images))
	for i, img := range images {
		out[i] = GeneratedImage{ID: img.ID, ImageURL: img.ImageURL, Prompt: img.Prompt}
	}
	return out, nil
}

// ListActive returns the campaign's active images, newest first. Same error
// contract as HeadlineService.ListActive.
func (s *ImageService) ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Image, error) {
	images, err := s.imageStore.ListActive(ctx, campaignID)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch images", err)
	}
	if images == nil {
		images = []models.Image{}
	}
	return images, nil
}

func resolveImageContext(ictx ImageContext, campaign *models.Campaign) ImageContext {
	if ictx.Industry == "" {
		ictx.Industry = campaign.Industry
	}
	if ictx.Audience == "" {
		ictx.Audience = campaign.Audience
	}
	if ictx.Tone == "" {
		ictx.Tone = campaign.Tone
	}
	if ictx.Description == "" && campaign.Description != nil {
		ictx.Description = *campaign.Description
	}
	return ictx
}

func buildImagePrompt(ictx ImageContext) string {
	var b strings.Builder
	b.WriteString("Create a professional marketing image for:\n")
	fmt.Fprintf(&b, "- Industry: %s\n", ictx.Industry)
	fmt.Fprintf(&b, "- Target Audience: %s\n", ictx.Audience)
	fmt.Fprintf(&b, "- Tone: %s\n", ictx.Tone)
	if ictx.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", ictx.Description)
	}
	b.WriteString("\nThe image should be brand-safe, professional, visually appealing, and suitable for marketing purposes.")
	return b.String()
}
