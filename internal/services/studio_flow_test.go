package services

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// Full studio flow: create a campaign, generate content, pair, unpair.
func TestStudioFlow(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	campaignStore := newFakeCampaignStore()
	headlineStore := &fakeHeadlineStore{}
	imageStore := &fakeImageStore{}
	creativeStore := &fakeCreativeStore{headlines: headlineStore, images: imageStore}
	oracle := &fakeOracle{completion: "Launch your SaaS in record time\nFounders trust the fastest stack\nGrow revenue while you sleep"}

	campaignSvc := NewCampaignService(campaignStore, headlineStore, imageStore, creativeStore, log)
	headlineSvc := NewHeadlineService(campaignStore, headlineStore, oracle, "German", 5, log)
	imageSvc := NewImageService(campaignStore, imageStore, oracle, 5, log)
	creativeSvc := NewCreativeService(campaignStore, headlineStore, imageStore, creativeStore, log)

	campaign, err := campaignSvc.Create(ctx, CreateCampaignInput{Name: "Launch", Industry: "SaaS", Audience: "Founders", Tone: "exciting"})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	headlines, err := headlineSvc.Generate(ctx, campaign.ID, 3, GenerationContext{Name: campaign.Name, Industry: campaign.Industry, Audience: campaign.Audience, Tone: campaign.Tone})
	if err != nil {
		t.Fatalf("generate headlines: %v", err)
	}
	if len(headlines) != 3 {
		t.Fatalf("got %d headlines, want 3", len(headlines))
	}

	images, err := imageSvc.Generate(ctx, campaign.ID, 2, ImageContext{})
	if err != nil {
		t.Fatalf("generate images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}

	creative, err := creativeSvc.CreatePair(ctx, campaign.ID, headlines[0].ID, images[0].ID)
	if err != nil {
		t.Fatalf("create pair: %v", err)
	}

	pairs, err := creativeSvc.ListPairs(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list pairs: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Headline == nil || pairs[0].Headline.ID != headlines[0].ID {
		t.Error("pair nested headline mismatch")
	}
	if pairs[0].Image == nil || pairs[0].Image.ID != images[0].ID {
		t.Error("pair nested image mismatch")
	}

	if err := creativeSvc.DeletePair(ctx, creative.ID); err != nil {
		t.Fatalf("delete pair: %v", err)
	}

	pairs, err = creativeSvc.ListPairs(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list pairs after delete: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("got %d pairs after delete, want 0", len(pairs))
	}

	// Unpairing never touches the generated content.
	remainingHeadlines, err := headlineSvc.ListActive(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list headlines: %v", err)
	}
	if len(remainingHeadlines) != 3 {
		t.Errorf("got %d headlines after unpair, want 3", len(remainingHeadlines))
	}
	remainingImages, err := imageSvc.ListActive(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("list images: %v", err)
	}
	if len(remainingImages) != 2 {
		t.Errorf("got %d images after unpair, want 2", len(remainingImages))
	}
}
