package handlers

import (
	"github.com/creative-studio/backend/internal/apperror"
	"github.com/creative-studio/backend/internal/http/dto"
	"github.com/creative-studio/backend/internal/models"
	"github.com/creative-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HeadlineHandler struct {
	headlineService *services.HeadlineService
	log             *zap.Logger
}

func NewHeadlineHandler(headlineService *services.HeadlineService, log *zap.Logger) *HeadlineHandler {
	return &HeadlineHandler{headlineService: headlineService, log: log}
}

func (h *HeadlineHandler) GenerateHeadlines(c *fiber.Ctx) error {
	var req dto.GenerateHeadlinesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}

	campaignID, err := parseID(req.CampaignID, "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := validateHeadlineContext(req.Context); err != nil {
		return respondError(c, h.log, err)
	}

	headlines, err := h.headlineService.Generate(c.Context(), campaignID, req.Count, services.GenerationContext{
		Name:        req.Context.Name,
		Industry:    req.Context.Industry,
		Audience:    req.Context.Audience,
		Tone:        req.Context.Tone,
		Description: req.Context.Description,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"headlines": headlines}))
}

// ListHeadlines keeps the read path soft: a store failure is logged and
// presented as an empty gallery instead of an error page.
func (h *HeadlineHandler) ListHeadlines(c *fiber.Ctx) error {
	campaignID, err := parseID(c.Query("campaignId"), "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	headlines, err := h.headlineService.ListActive(c.Context(), campaignID)
	if err != nil {
		if apperror.IsType(err, apperror.TypeStore) {
			h.log.Warn("masking store error on headline list", zap.Error(err))
			return c.JSON(dto.OK(fiber.Map{"headlines": []models.Headline{}}))
		}
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"headlines": headlines}))
}

func validateHeadlineContext(ctx dto.HeadlineContext) error {
	if ctx.Name == "" {
		return apperror.NewValidation("context.name is required")
	}
	if ctx.Industry == "" {
		return apperror.NewValidation("context.industry is required")
	}
	if ctx.Audience == "" {
		return apperror.NewValidation("context.audience is required")
	}
	if ctx.Tone == "" {
		return apperror.NewValidation("context.tone is required")
	}
	return nil
}
