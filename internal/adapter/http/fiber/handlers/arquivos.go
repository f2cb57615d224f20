package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/middleware"
	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/service/arquivo"
)

type ArquivoHandler struct {
	service *arquivo.Service
	log     *zap.Logger
}

func NewArquivoHandler(service *arquivo.Service, log *zap.Logger) *ArquivoHandler {
	return &ArquivoHandler{
		service: service,
		log:     log,
	}
}

func (h *ArquivoHandler) List(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	arquivos, err := h.service.List(c.Context(), c.Params("entryId"), user)
	if err != nil {
		return err
	}
	return c.JSON(arquivos)
}

// Upload receives a multipart form with a single "arquivo" field. Size and
// type limits are enforced by the service before anything hits storage.
func (h *ArquivoHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Campo 'arquivo' é obrigatório"})
	}
	if fileHeader.Size > domain.MaxFileSize {
		return domain.ErrFileTooLarge
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer f.Close()

	userID, _ := c.Locals("user_id").(string)
	created, err := h.service.Upload(c.Context(), arquivo.UploadInput{
		EntryID:     c.Params("entryId"),
		Nome:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Tamanho:     fileHeader.Size,
		UploadedBy:  userID,
		Conteudo:    f,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

type AddLinkRequest struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
}

func (h *ArquivoHandler) AddLink(c *fiber.Ctx) error {
	var req AddLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := c.Locals("user_id").(string)
	created, err := h.service.AddLink(c.Context(), c.Params("entryId"), req.Nome, req.URL, userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ArquivoHandler) Remove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
