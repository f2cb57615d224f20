package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/service/cliente"
)

type ClienteHandler struct {
	service *cliente.Service
	log     *zap.Logger
}

func NewClienteHandler(service *cliente.Service, log *zap.Logger) *ClienteHandler {
	return &ClienteHandler{
		service: service,
		log:     log,
	}
}

func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var input cliente.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Nome == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome e email são obrigatórios"})
	}

	created, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ClienteHandler) List(c *fiber.Ctx) error {
	apenasAtivos := c.QueryBool("ativos", false)
	clientes, err := h.service.List(c.Context(), apenasAtivos)
	if err != nil {
		return err
	}
	return c.JSON(clientes)
}

func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	found, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(found)
}

func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var input cliente.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Deactivate soft-deletes. Historical projetos keep their cliente reference.
func (h *ClienteHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
