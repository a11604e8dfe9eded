package handlers

import (
	"github.com/creative-studio/backend/internal/http/dto"
	"github.com/creative-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}

	campaign, err := h.campaignService.Create(c.Context(), services.CreateCampaignInput{
		Name:        req.Name,
		Industry:    req.Industry,
		Audience:    req.Audience,
		Tone:        req.Tone,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"campaign": campaign}))
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"campaigns": campaigns}))
}
