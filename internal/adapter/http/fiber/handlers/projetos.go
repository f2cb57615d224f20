package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/middleware"
	"github.com/Kleberfca/timeline-project-system/internal/service/projeto"
)

type ProjetoHandler struct {
	service *projeto.Service
	log     *zap.Logger
}

func NewProjetoHandler(service *projeto.Service, log *zap.Logger) *ProjetoHandler {
	return &ProjetoHandler{
		service: service,
		log:     log,
	}
}

func (h *ProjetoHandler) Create(c *fiber.Ctx) error {
	var input projeto.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.ClienteID == "" || input.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cliente e nome são obrigatórios"})
	}

	created, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProjetoHandler) List(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	projetos, err := h.service.List(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(projetos)
}

func (h *ProjetoHandler) Get(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	found, err := h.service.GetByID(c.Context(), c.Params("id"), user)
	if err != nil {
		return err
	}
	return c.JSON(found)
}

func (h *ProjetoHandler) Update(c *fiber.Ctx) error {
	var input projeto.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *ProjetoHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
