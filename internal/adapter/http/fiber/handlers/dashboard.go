package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/service/admin"
)

type DashboardHandler struct {
	service *admin.Service
	log     *zap.Logger
}

func NewDashboardHandler(service *admin.Service, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
