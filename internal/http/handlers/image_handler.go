package handlers

import (
	"github.com/creative-studio/backend/internal/apperror"
	"github.com/creative-studio/backend/internal/http/dto"
	"github.com/creative-studio/backend/internal/models"
	"github.com/creative-studio/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ImageHandler struct {
	imageService *services.ImageService
	log          *zap.Logger
}

func NewImageHandler(imageService *services.ImageService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{imageService: imageService, log: log}
}

func (h *ImageHandler) GenerateImages(c *fiber.Ctx) error {
	var req dto.GenerateImagesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("invalid request body"))
	}

	campaignID, err := parseID(req.CampaignID, "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var ictx services.ImageContext
	if req.Context != nil {
		ictx = services.ImageContext{
			Industry:    req.Context.Industry,
			Audience:    req.Context.Audience,
			Tone:        req.Context.Tone,
			Description: req.Context.Description,
		}
	}

	images, err := h.imageService.Generate(c.Context(), campaignID, req.Count, ictx)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"images": images}))
}

// ListImages degrades the same way ListHeadlines does: store failures come
// back as an empty list.
func (h *ImageHandler) ListImages(c *fiber.Ctx) error {
	campaignID, err := parseID(c.Query("campaignId"), "campaignId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	images, err := h.imageService.ListActive(c.Context(), campaignID)
	if err != nil {
		if apperror.IsType(err, apperror.TypeStore) {
			h.log.Warn("masking store error on image list", zap.Error(err))
			return c.JSON(dto.OK(fiber.Map{"images": []models.Image{}}))
		}
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.OK(fiber.Map{"images": images}))
}
