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
)

const (
	headlineTemperature = 0.8
	minGenerateCount    = 1
)

type HeadlineService struct {
	campaignStore CampaignStore
	headlineStore HeadlineStore
	oracle        ai.Oracle
	language      string
	maxCount      int
	log           *zap.Logger
}

func NewHeadlineService(
	campaignStore CampaignStore,
	headlineStore HeadlineStore,
	oracle ai.Oracle,
	language string,
	maxCount int,
	log *zap.Logger,
) *HeadlineService {
	return &HeadlineService{
		campaignStore: campaignStore,
		headlineStore: headlineStore,
		oracle:        oracle,
		language:      language,
		maxCount:      maxCount,
		log:           log,
	}
}

// GenerationContext is the campaign framing the copywriter prompt is built
// from. All fields except Description are required for headline generation.
type GenerationContext struct {
	Name        string
	Industry    string
	Audience    string
	Tone        string
	Description string
}

type GeneratedHeadline struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// Generate asks the oracle for count headlines and persists whatever usable
// lines come back, all inside one transaction. The oracle returning fewer
// lines than requested is accepted silently.
func (s *HeadlineService) Generate(ctx context.Context, campaignID uuid.UUID, count int, gctx GenerationContext) ([]GeneratedHeadline, error) {
	if count < minGenerateCount || count > s.maxCount {
		return nil, apperror.NewValidation(fmt.Sprintf("count must be between %d and %d", minGenerateCount, s.maxCount))
	}

	if _, err := getCampaign(ctx, s.campaignStore, campaignID); err != nil {
		return nil, err
	}

	system := fmt.Sprintf("You are a professional %s marketing copywriter. Generate compelling headlines.", s.language)
	prompt := buildHeadlinePrompt(count, s.language, gctx)

	text, err := s.oracle.Complete(ctx, system, prompt, headlineTemperature)
	if err != nil {
		s.log.Error("headline generation failed", zap.String("campaign_id", campaignID.String()), zap.Error(err))
		return nil, apperror.NewGeneration("Failed to generate headlines", err)
	}

	texts := parseHeadlines(text, count)

	headlines, err := s.headlineStore.CreateBatch(ctx, campaignID, texts)
	if err != nil {
		return nil, apperror.NewStore("Failed to generate headlines", err)
	}

	out := make([]GeneratedHeadline, len(headlines))
	for i, h := range headlines {
		out[i] = GeneratedHeadline{ID: h.ID, Text: h.Text}
	}
	return out, nil
}

// ListActive returns the campaign's active headlines, newest first. Store
// failures come back as StoreError; whether to mask them is the caller's
// decision.
func (s *HeadlineService) ListActive(ctx context.Context, campaignID uuid.UUID) ([]models.Headline, error) {
	headlines, err := s.headlineStore.ListActive(ctx, campaignID)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch headlines", err)
	}
	if headlines == nil {
		headlines = []models.Headline{}
	}
	return headlines, nil
}

func buildHeadlinePrompt(count int, language string, gctx GenerationContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s marketing headlines for a campaign.\n\n", count, language)
	b.WriteString("Campaign Details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", gctx.Name)
	fmt.Fprintf(&b, "- Industry: %s\n", gctx.Industry)
	fmt.Fprintf(&b, "- Target Audience: %s\n", gctx.Audience)
	fmt.Fprintf(&b, "- Tone: %s\n", gctx.Tone)
	if gctx.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", gctx.Description)
	}
	b.WriteString("\nRequirements:\n")
	b.WriteString("- Each headline should be 8-15 words\n")
	b.WriteString("- Action-oriented and benefit-focused\n")
	fmt.Fprintf(&b, "- Written in %s\n", language)
	fmt.Fprintf(&b, "- Suitable for the %s industry\n", gctx.Industry)
	fmt.Fprintf(&b, "- Match the %s tone\n", gctx.Tone)
	b.WriteString("\nReturn ONLY the headlines, one per line, without numbering or bullet points.")
	return b.String()
}

// parseHeadlines splits the completion into lines, trims whitespace, drops
// empty lines, and truncates to count.
func parseHeadlines(text string, count int) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, count)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == count {
			break
		}
	}
	return out
}
