package handlers

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/service/sistema"
)

type SistemaHandler struct {
	service *sistema.Service
	log     *zap.Logger
}

func NewSistemaHandler(service *sistema.Service, log *zap.Logger) *SistemaHandler {
	return &SistemaHandler{
		service: service,
		log:     log,
	}
}

func (h *SistemaHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

func (h *SistemaHandler) Update(c *fiber.Ctx) error {
	var input sistema.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := c.Locals("user_id").(string)
	cfg, err := h.service.Update(c.Context(), input, userID)
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

type assetUploadFunc func(ctx context.Context, nome, contentType string, size int64, r io.Reader, userID string) (*domain.SistemaConfig, error)

func (h *SistemaHandler) UploadLogo(c *fiber.Ctx) error {
	return h.uploadAsset(c, h.service.UploadLogo)
}

func (h *SistemaHandler) UploadFavicon(c *fiber.Ctx) error {
	return h.uploadAsset(c, h.service.UploadFavicon)
}

func (h *SistemaHandler) uploadAsset(c *fiber.Ctx, upload assetUploadFunc) error {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Campo 'arquivo' é obrigatório"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer f.Close()

	userID, _ := c.Locals("user_id").(string)
	cfg, err := upload(c.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, f, userID)
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}
