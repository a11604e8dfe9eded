package handlers

import (
	"github.com/creative-studio/backend/internal/http/dto"
	"github.com/creative-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreativeHandler struct {
	creativeService *services.CreativeService
	log             *zap.Logger
}

func NewCreativeHandler(creativeService *services.CreativeService, log *zap.Logger) *CreativeHandler {
	return &CreativeHandler{creativeService: creativeService, log: log}
}

func (h *CreativeHandler) CreatePair(c *fiber.Ctx) error {
	var req dto.CreatePairRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}

	campaignID, err := parseID(req.CampaignID, "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	headlineID, err := parseID(req.HeadlineID, "headlineId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	imageID, err := parseID(req.ImageID, "imageId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	creative, err := h.creativeService.CreatePair(c.Context(), campaignID, headlineID, imageID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"creative": creative}))
}

func (h *CreativeHandler) ListPairs(c *fiber.Ctx) error {
	campaignID, err := parseID(c.Query("campaignId"), "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	creatives, err := h.creativeService.ListPairs(c.Context(), campaignID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"creatives": creatives}))
}

func (h *CreativeHandler) DeletePair(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "creative id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.creativeService.DeletePair(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OKMessage("Creative pair removed successfully"))
}
