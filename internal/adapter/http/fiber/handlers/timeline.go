package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/middleware"
	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/service/timeline"
)

type TimelineHandler struct {
	service *timeline.Service
	log     *zap.Logger
}

func NewTimelineHandler(service *timeline.Service, log *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		service: service,
		log:     log,
	}
}

// ListByProjeto returns the ordered timeline with overall and per-fase
// completion percentages. An optional ?fase= query narrows the returned
// entries to one fase; progress is always computed over the full timeline.
func (h *TimelineHandler) ListByProjeto(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	entries, err := h.service.ListByProjeto(c.Context(), c.Params("id"), user)
	if err != nil {
		return err
	}

	visible := entries
	if fase := c.Query("fase"); fase != "" {
		visible = make([]*domain.TimelineEntry, 0, len(entries))
		for _, e := range entries {
			if e.Etapa != nil && e.Etapa.Fase != nil && string(e.Etapa.Fase.Nome) == fase {
				visible = append(visible, e)
			}
		}
	}

	return c.JSON(fiber.Map{
		"timeline":           visible,
		"progresso":          timeline.Progresso(entries),
		"progresso_por_fase": timeline.ProgressoPorFase(entries),
	})
}

type UpdateStatusRequest struct {
	Status      domain.StatusEtapa `json:"status"`
	Observacoes *string            `json:"observacoes,omitempty"`
}

func (h *TimelineHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := h.service.UpdateStatus(c.Context(), c.Params("entryId"), req.Status, req.Observacoes)
	if err != nil {
		return err
	}
	return c.JSON(entry)
}

type UpdateObservacoesRequest struct {
	Observacoes *string `json:"observacoes"`
}

func (h *TimelineHandler) UpdateObservacoes(c *fiber.Ctx) error {
	var req UpdateObservacoesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := h.service.UpdateObservacoes(c.Context(), c.Params("entryId"), req.Observacoes)
	if err != nil {
		return err
	}
	return c.JSON(entry)
}
